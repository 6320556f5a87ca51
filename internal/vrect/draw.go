package vrect

import (
	"image/color"

	"chosenoffset.com/vrect/internal/core/geom"
	"chosenoffset.com/vrect/internal/render"
)

// DefaultDebugColor is used for the debug overlay when DrawOptions leaves
// DebugColor nil.
var DefaultDebugColor color.Color = color.RGBA{R: 255, A: 255}

// debugLineWidth is the stroke width of every debug overlay primitive.
const debugLineWidth = 1

// DrawOptions controls Draw and Commands.
type DrawOptions struct {
	Color       color.Color
	StrokeWidth float64 // 0 fills the rectangle
	Debug       bool    // adds outline, diagonals and heading
	DebugColor  color.Color
}

// Commands describes the rectangle as drawing primitives without drawing
// anything.
//
// The first command is the rectangle itself. With Debug set it is followed
// by the outline through the y-sorted corners (p0, p1, p3, p2), the
// diagonals p0-p3 and p1-p2, and a heading line from the center, Height
// units long, along the current angle.
func (r *RotatedRect) Commands(opts DrawOptions) render.Commands {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	corners := r.Points()

	var cmds render.Commands
	if opts.StrokeWidth > 0 {
		cmds = append(cmds, render.Command{
			Kind:   render.CmdStrokePolygon,
			Points: corners[:],
			Width:  opts.StrokeWidth,
			Color:  clr,
		})
	} else {
		cmds = append(cmds, render.Command{
			Kind:   render.CmdFillPolygon,
			Points: corners[:],
			Color:  clr,
		})
	}

	if !opts.Debug {
		return cmds
	}

	dbg := opts.DebugColor
	if dbg == nil {
		dbg = DefaultDebugColor
	}
	s := sortedByY(corners)
	line := func(a, b geom.Point) render.Command {
		return render.Command{Kind: render.CmdStrokeLine, Points: []geom.Point{a, b}, Width: debugLineWidth, Color: dbg}
	}

	return append(cmds,
		render.Command{
			Kind:   render.CmdStrokePolygon,
			Points: []geom.Point{s[0], s[1], s[3], s[2]},
			Width:  debugLineWidth,
			Color:  dbg,
		},
		line(s[0], s[3]),
		line(s[1], s[2]),
		line(r.Center(), r.heading()),
	)
}

// Draw emits the rectangle to dst and returns what it emitted.
func (r *RotatedRect) Draw(dst render.Canvas, opts DrawOptions) render.Commands {
	cmds := r.Commands(opts)
	cmds.Replay(dst)
	return cmds
}

// heading is the point Height units from the center along the angle.
func (r *RotatedRect) heading() geom.Point {
	sin, cos := sincosDeg(r.angle)
	return geom.Point{X: r.x + r.height*cos, Y: r.y + r.height*sin}
}
