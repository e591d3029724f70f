package component

import (
	"github.com/lixenwraith/vi-frame/layout"
	"github.com/lixenwraith/vi-frame/render"
	"github.com/lixenwraith/vi-frame/terminal"
	"github.com/lixenwraith/vi-frame/tree"
)

// Debug fills its box with a solid color, for inspecting layouts
type Debug struct {
	tree.Base
	label         string
	color         terminal.Color
	width, height layout.Measurement
}

func NewDebug(label string, color terminal.Color, width, height layout.Measurement) *Debug {
	return &Debug{label: label, color: color, width: width, height: height}
}

func (d *Debug) DefaultFormatting() layout.Formatting {
	f := layout.Default()
	f.Width, f.Height = d.width, d.height
	return f
}

// Render writes only the label; compositing pads the box in the
// background color
func (d *Debug) Render(buf *render.Buffer) error {
	buf.SetBackground(d.color).Write(d.label)
	return nil
}
