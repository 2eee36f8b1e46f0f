package core

import "github.com/go-gl/mathgl/mgl64"

// Body is the kinematic state of a moving circular object
type Body struct {
	// Pos is the center in board units
	Pos mgl64.Vec2
	// Vel is the velocity in board units per second
	Vel mgl64.Vec2
	// Radius is fixed for the lifetime of the body
	Radius float64
}

// Bounds returns the square box enclosing the body
func (b *Body) Bounds() Box {
	d := 2 * b.Radius
	return BoxFromCenter(b.Pos.X(), b.Pos.Y(), d, d)
}
