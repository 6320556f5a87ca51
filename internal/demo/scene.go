package demo

import (
	"fmt"
	"log"

	"chosenoffset.com/vrect/internal/core/geom"
	"chosenoffset.com/vrect/internal/render"
	"chosenoffset.com/vrect/internal/vrect"
)

// nudge is how far the arrow keys move the dot per tick
const nudge = 2.0

// Scene animates one rotated rectangle, a moving dot tested with
// CollidePoint, and an optional probe rectangle tested with CollideRect.
type Scene struct {
	cfg      *Config
	palette  Palette
	overlap  vrect.OverlapMode
	renderer render.Renderer
	input    render.InputManager

	rect  *vrect.RotatedRect
	probe *vrect.RotatedRect
	dot   geom.Point
	vel   geom.Point

	paused    bool
	debug     bool
	dotInside bool
	probeHit  bool
	ticks     int
}

// NewScene builds a scene from a validated config.
func NewScene(cfg *Config, rend render.Renderer, input render.InputManager) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	overlap, err := vrect.ParseOverlapMode(cfg.Overlap)
	if err != nil {
		return nil, err
	}
	rect, err := vrect.New(cfg.Rect.X, cfg.Rect.Y, cfg.Rect.Width, cfg.Rect.Height, cfg.Rect.Angle)
	if err != nil {
		return nil, fmt.Errorf("rect: %w", err)
	}

	s := &Scene{
		cfg:      cfg,
		palette:  palette,
		overlap:  overlap,
		renderer: rend,
		input:    input,
		rect:     rect,
		dot:      geom.Pt(cfg.Dot.X, cfg.Dot.Y),
		vel:      geom.Pt(cfg.Dot.VX, cfg.Dot.VY),
		debug:    cfg.Style.Debug,
	}
	if cfg.Probe.Enabled {
		s.probe, err = vrect.New(0, 0, cfg.Probe.Width, cfg.Probe.Height, cfg.Probe.Angle)
		if err != nil {
			return nil, fmt.Errorf("probe: %w", err)
		}
	}
	s.dotInside = s.rect.CollidePointP(s.dot)
	return s, nil
}

// Update advances the animation one tick.
func (s *Scene) Update() error {
	if s.input.IsKeyJustPressed(render.KeyEscape) {
		log.Printf("quit after %d ticks, rect %v", s.ticks, s.rect)
		return render.ErrTerminated
	}
	if s.input.IsKeyJustPressed(render.KeySpace) {
		s.paused = !s.paused
	}
	if s.input.IsKeyJustPressed(render.KeyD) {
		s.debug = !s.debug
	}
	s.handleArrows()

	if !s.paused {
		s.rect.Rotate(s.cfg.Rect.SpinSpeed)
		s.dot = s.wrap(s.dot.Add(s.vel))
	}

	inside := s.rect.CollidePointP(s.dot)
	if inside != s.dotInside {
		verb := "left"
		if inside {
			verb = "entered"
		}
		log.Printf("dot %s %v at %v", verb, s.rect, s.dot)
		s.dotInside = inside
	}

	if s.probe != nil {
		cx, cy := s.input.GetCursorPosition()
		s.probe.SetCenter(float64(cx), float64(cy))
		if s.input.IsMouseButtonPressed(render.MouseButtonRight) {
			s.probe.Rotate(1)
		}
		hit, err := s.rect.CollideRectMode(s.probe, s.overlap)
		if err != nil {
			return err
		}
		s.probeHit = hit
	}

	s.ticks++
	return nil
}

func (s *Scene) handleArrows() {
	if s.input.IsKeyPressed(render.KeyUp) {
		s.dot.Y -= nudge
	}
	if s.input.IsKeyPressed(render.KeyDown) {
		s.dot.Y += nudge
	}
	if s.input.IsKeyPressed(render.KeyLeft) {
		s.dot.X -= nudge
	}
	if s.input.IsKeyPressed(render.KeyRight) {
		s.dot.X += nudge
	}
}

// wrap keeps a moving dot on screen by bringing it back on the far side
func (s *Scene) wrap(p geom.Point) geom.Point {
	w, h := float64(s.cfg.Window.Width), float64(s.cfg.Window.Height)
	if p.X > w {
		p.X = 0
	} else if p.X < 0 {
		p.X = w
	}
	if p.Y > h {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = h
	}
	return p
}

// Draw draws the scene to screen.
func (s *Scene) Draw(screen render.Image) {
	screen.Fill(s.palette.Background)
	s.DrawTo(s.renderer.NewCanvas(screen))
}

// DrawTo emits the scene to any canvas.
func (s *Scene) DrawTo(c render.Canvas) {
	shape := s.palette.Shape
	if s.dotInside {
		shape = s.palette.Hit
	}
	s.rect.Draw(c, vrect.DrawOptions{
		Color:       shape,
		StrokeWidth: s.cfg.Style.StrokeWidth,
		Debug:       s.debug,
		DebugColor:  s.palette.Debug,
	})

	if s.probe != nil {
		probe := s.palette.Probe
		if s.probeHit {
			probe = s.palette.ProbeHit
		}
		s.probe.Draw(c, vrect.DrawOptions{Color: probe, StrokeWidth: 2})
	}

	c.FillCircle(s.dot, s.cfg.Dot.Radius, s.palette.Dot)
	c.DrawText(s.status(), 4, 4)
}

func (s *Scene) status() string {
	state := ""
	if s.paused {
		state = " [paused]"
	}
	return fmt.Sprintf("angle %.1f  dot inside: %t  probe hit (%v): %t%s",
		s.rect.Angle(), s.dotInside, s.overlap, s.probeHit, state)
}

// Layout implements render.Game.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.Window.Width, s.cfg.Window.Height
}

// Rect returns the animated rectangle.
func (s *Scene) Rect() *vrect.RotatedRect { return s.rect }

// Dot returns the current dot position.
func (s *Scene) Dot() geom.Point { return s.dot }

// DotInside reports the containment result of the last tick.
func (s *Scene) DotInside() bool { return s.dotInside }

// ProbeHit reports the probe collision result of the last tick.
func (s *Scene) ProbeHit() bool { return s.probeHit }
