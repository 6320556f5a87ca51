package render

import (
	"errors"
	"image"
	"image/color"

	"chosenoffset.com/vrect/internal/core/geom"
)

// ErrTerminated is returned from Game.Update to end the game loop normally.
var ErrTerminated = errors.New("render: terminated")

// Canvas is a drawing surface that accepts vector primitives. Shapes emit
// their geometry to a Canvas and never touch the backend directly.
type Canvas interface {
	// FillPolygon fills the polygon with the given vertices.
	FillPolygon(points []geom.Point, clr color.Color)
	// StrokePolygon draws the closed outline of the polygon.
	StrokePolygon(points []geom.Point, width float64, clr color.Color)
	// StrokeLine draws a single line segment.
	StrokeLine(seg geom.Segment, width float64, clr color.Color)
	// FillCircle draws a filled circle.
	FillCircle(center geom.Point, radius float64, clr color.Color)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y int)
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// the code that draws shapes.
type Renderer interface {
	// NewImage creates an offscreen image.
	NewImage(width, height int) Image

	// NewCanvas returns a Canvas that draws onto dst.
	NewCanvas(dst Image) Canvas
}

// Image represents a renderable image surface that can be drawn to.
// It abstracts the underlying image implementation.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the demo listens to
const (
	KeyD Key = iota // Debug overlay toggle
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the state. It is called every tick (typically 60 times per second).
	// Returning ErrTerminated stops the loop without an error.
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
