package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

type FontName string

const Bold FontName = "bold"

type faceKey struct {
	name FontName
	size int
}

var (
	fonts = map[FontName]*truetype.Font{}
	faces = map[faceKey]font.Face{}
)

// LoadDefaults parses the bundled Go Bold font
func LoadDefaults() error {
	return LoadFont(Bold, gobold.TTF)
}

func LoadFont(name FontName, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = f
	for k := range faces {
		if k.name == name {
			delete(faces, k)
		}
	}
	return nil
}

// Face returns the face of name at the given pixel height. Faces are cached.
func (f FontName) Face(size int) font.Face {
	if size < 1 {
		size = 1
	}
	k := faceKey{name: f, size: size}
	if face, ok := faces[k]; ok {
		return face
	}

	ttf, ok := fonts[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(size),
		Hinting: font.HintingFull,
	})
	faces[k] = face
	return face
}
