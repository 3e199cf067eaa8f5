package scenes

import "github.com/automoto/blockfront/render"

// UpdateFunc runs a screen's logic for one frame
type UpdateFunc func()

// DrawFunc renders a screen
type DrawFunc func(s render.Surface)

// Dispatcher holds the single active screen. Setting a new pair replaces the
// old one outright; there is no history.
type Dispatcher struct {
	update UpdateFunc
	draw   DrawFunc
	frames uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SetActive makes (update, draw) the active screen from the next call on.
// The last call before a frame wins.
func (d *Dispatcher) SetActive(update UpdateFunc, draw DrawFunc) {
	d.update = update
	d.draw = draw
}

// setUpdate swaps only the update half, keeping the current drawing
func (d *Dispatcher) setUpdate(update UpdateFunc) {
	d.update = update
}

func (d *Dispatcher) Update() {
	if d.update == nil {
		panic("scenes: Update called before any screen was activated")
	}
	d.update()
}

func (d *Dispatcher) Draw(s render.Surface) {
	if d.draw == nil {
		panic("scenes: Draw called before any screen was activated")
	}
	d.draw(s)
	d.frames++
}

// RunFrame is one Update followed by one Draw
func (d *Dispatcher) RunFrame(s render.Surface) {
	d.Update()
	d.Draw(s)
}

// Frame returns the number of completed draws
func (d *Dispatcher) Frame() uint64 {
	return d.frames
}
