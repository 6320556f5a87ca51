package render

import (
	"image/color"

	"chosenoffset.com/vrect/internal/core/geom"
)

// CommandKind identifies which Canvas call a Command stands for.
type CommandKind int

const (
	CmdFillPolygon CommandKind = iota
	CmdStrokePolygon
	CmdStrokeLine
	CmdFillCircle
	CmdText
)

func (k CommandKind) String() string {
	switch k {
	case CmdFillPolygon:
		return "fill-polygon"
	case CmdStrokePolygon:
		return "stroke-polygon"
	case CmdStrokeLine:
		return "stroke-line"
	case CmdFillCircle:
		return "fill-circle"
	case CmdText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one recorded drawing primitive.
//
// Points holds the polygon vertices, the two ends of a line, the circle
// center, or the text position. Width is the stroke width, or the radius
// for circles.
type Command struct {
	Kind   CommandKind
	Points []geom.Point
	Width  float64
	Color  color.Color
	Text   string
}

// Commands is an ordered list of drawing primitives.
type Commands []Command

// Replay issues every command to dst in order.
func (cs Commands) Replay(dst Canvas) {
	for _, c := range cs {
		switch c.Kind {
		case CmdFillPolygon:
			dst.FillPolygon(c.Points, c.Color)
		case CmdStrokePolygon:
			dst.StrokePolygon(c.Points, c.Width, c.Color)
		case CmdStrokeLine:
			dst.StrokeLine(geom.Segment{A: c.Points[0], B: c.Points[1]}, c.Width, c.Color)
		case CmdFillCircle:
			dst.FillCircle(c.Points[0], c.Width, c.Color)
		case CmdText:
			dst.DrawText(c.Text, int(c.Points[0].X), int(c.Points[0].Y))
		}
	}
}

// OfKind returns the commands of the given kind, in order.
func (cs Commands) OfKind(kind CommandKind) Commands {
	var out Commands
	for _, c := range cs {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Recorder is a Canvas that keeps every call as a Command. It is used for
// headless rendering and to assert on drawing output in tests.
type Recorder struct {
	Commands Commands
}

// FillPolygon records a filled polygon.
func (r *Recorder) FillPolygon(points []geom.Point, clr color.Color) {
	r.add(Command{Kind: CmdFillPolygon, Points: clonePoints(points), Color: clr})
}

// StrokePolygon records a polygon outline.
func (r *Recorder) StrokePolygon(points []geom.Point, width float64, clr color.Color) {
	r.add(Command{Kind: CmdStrokePolygon, Points: clonePoints(points), Width: width, Color: clr})
}

// StrokeLine records a line segment.
func (r *Recorder) StrokeLine(seg geom.Segment, width float64, clr color.Color) {
	r.add(Command{Kind: CmdStrokeLine, Points: []geom.Point{seg.A, seg.B}, Width: width, Color: clr})
}

// FillCircle records a filled circle.
func (r *Recorder) FillCircle(center geom.Point, radius float64, clr color.Color) {
	r.add(Command{Kind: CmdFillCircle, Points: []geom.Point{center}, Width: radius, Color: clr})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(text string, x, y int) {
	r.add(Command{Kind: CmdText, Points: []geom.Point{{X: float64(x), Y: float64(y)}}, Text: text})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

func (r *Recorder) add(c Command) {
	r.Commands = append(r.Commands, c)
}

// callers may reuse their slices between frames
func clonePoints(points []geom.Point) []geom.Point {
	return append([]geom.Point(nil), points...)
}
