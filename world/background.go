// Package world renders the block world shown behind the title menus.
package world

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lafriks/go-tiled"
)

const terrainLayer = "terrain"

// Block is one tileset entry of the world map
type Block struct {
	Name  string
	Color color.RGBA
}

// Background is a block grid drawn as a slowly turning panorama
type Background struct {
	Cols, Rows int
	TileSize   int
	Sky        color.RGBA

	blocks []Block
	cells  []int // Index into blocks, -1 for air
	seed   string
	image  *ebiten.Image
}

// FromMap reads the terrain layer of a Tiled map
func FromMap(m *tiled.Map) (*Background, error) {
	bg := &Background{
		Cols:     m.Width,
		Rows:     m.Height,
		TileSize: m.TileWidth,
		Sky:      color.RGBA{R: 135, G: 206, B: 235, A: 255},
		cells:    make([]int, m.Width*m.Height),
	}
	for i := range bg.cells {
		bg.cells[i] = -1
	}

	byName := map[string]int{}
	for _, layer := range m.Layers {
		if layer.Name != terrainLayer {
			continue
		}
		if sky := layer.Properties.GetString("sky"); sky != "" {
			c, err := parseHexColor(sky)
			if err != nil {
				return nil, fmt.Errorf("terrain sky: %w", err)
			}
			bg.Sky = c
		}

		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile.IsNil() {
					continue
				}

				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					return nil, fmt.Errorf("tile %d at %d,%d: %w", tile.ID, x, y, err)
				}
				name := tilesetTile.Properties.GetString("block")
				idx, ok := byName[name]
				if !ok {
					c, err := parseHexColor(tilesetTile.Properties.GetString("color"))
					if err != nil {
						return nil, fmt.Errorf("block %q: %w", name, err)
					}
					idx = len(bg.blocks)
					bg.blocks = append(bg.blocks, Block{Name: name, Color: c})
					byName[name] = idx
				}
				bg.cells[y*m.Width+x] = idx
			}
		}
		return bg, nil
	}

	return nil, fmt.Errorf("map has no %q layer", terrainLayer)
}

// SetSeed changes the per-block shading. The same seed always yields the same picture.
func (b *Background) SetSeed(seed string) {
	if seed == b.seed && b.image != nil {
		return
	}
	b.seed = seed
	if b.image != nil {
		b.image.Deallocate()
		b.image = nil
	}
}

// Seed returns the current shading seed
func (b *Background) Seed() string {
	return b.seed
}

// BlockAt returns the block in cell x,y
func (b *Background) BlockAt(x, y int) (Block, bool) {
	if x < 0 || y < 0 || x >= b.Cols || y >= b.Rows {
		return Block{}, false
	}
	idx := b.cells[y*b.Cols+x]
	if idx < 0 {
		return Block{}, false
	}
	return b.blocks[idx], true
}

// Shade returns the drawn colour of cell x,y, or the sky for air
func (b *Background) Shade(x, y int) color.RGBA {
	blk, ok := b.BlockAt(x, y)
	if !ok {
		return b.Sky
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d:%d", b.seed, x, y)
	jitter := int(h.Sum32()%25) - 12

	return color.RGBA{
		R: clamp(int(blk.Color.R) + jitter),
		G: clamp(int(blk.Color.G) + jitter),
		B: clamp(int(blk.Color.B) + jitter),
		A: blk.Color.A,
	}
}

// PanOffset maps a view angle in degrees to a horizontal offset within one panorama width
func PanOffset(angle float64, width int) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a / 360 * float64(width)
}

// Draw fills dst with the panorama turned to angle degrees
func (b *Background) Draw(dst *ebiten.Image, angle float64) {
	if b.image == nil {
		b.image = b.render()
	}

	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	pw := b.Cols * b.TileSize
	ph := b.Rows * b.TileSize
	scale := float64(dh) / float64(ph)
	span := float64(pw) * scale

	dst.Fill(b.Sky)
	x := -PanOffset(angle, pw) * scale
	for ; x < float64(dw); x += span {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, 0)
		dst.DrawImage(b.image, op)
	}
}

func (b *Background) render() *ebiten.Image {
	img := ebiten.NewImage(b.Cols*b.TileSize, b.Rows*b.TileSize)
	ts := float32(b.TileSize)
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			vector.FillRect(img, float32(x)*ts, float32(y)*ts, ts, ts, b.Shade(x, y), false)
		}
	}
	return img
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
