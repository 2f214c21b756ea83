package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalRenderer presents a framebuffer on an ultraviolet terminal.
// Each terminal cell shows two vertically stacked framebuffer pixels,
// so the framebuffer is twice as tall as the terminal.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int // terminal columns
	height int // terminal rows
}

// NewTerminalRenderer creates a renderer for a terminal of the given
// size in cells.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		term:   term,
		width:  width,
		height: height,
	}
}

// FramebufferSize returns the pixel dimensions a framebuffer must have
// to fill this terminal.
func (r *TerminalRenderer) FramebufferSize() (width, height int) {
	return r.width, r.height * 2
}

// Render converts the framebuffer to terminal cells.
func (r *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(r.term, uv.Rect(0, 0, r.width, r.height))
}

// Flush pushes the pending cells to the terminal.
func (r *TerminalRenderer) Flush() error {
	return r.term.Display()
}
