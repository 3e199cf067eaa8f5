// Package render defines the drawing primitives screens are written against.
package render

import "image/color"

// Align selects how DrawText positions a string relative to x
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextureID names a texture loaded by the surface
type TextureID string

const TextureTitleBanner TextureID = "title-banner"

// Mode is the projection in effect
type Mode int

const (
	Mode2D Mode = iota
	Mode3D
)

// Surface is the per-frame drawing target. Text positions are the top edge of the glyphs.
type Surface interface {
	Set2DMode()
	Set3DMode()
	SetFontSize(w, h int)
	SetTextColor(c color.Color)
	DrawText(x, y int, align Align, s string)
	DrawTexturedRect(x, y, w, h int, tex TextureID)
	FillRect(x, y, w, h int, c color.Color)
	// RenderWorldBackground draws the world turned by angle degrees. Only valid in 3D mode.
	RenderWorldBackground(angle float64)
	Width() int
	Height() int
}
