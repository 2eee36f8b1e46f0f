package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/physics"
)

// Ball is the single moving body of a round
type Ball struct {
	body core.Body
}

// NewBall creates a ball centered on (x, y)
func NewBall(x, y, radius float64, vel mgl64.Vec2) *Ball {
	return &Ball{
		body: core.Body{
			Pos:    mgl64.Vec2{x, y},
			Vel:    vel,
			Radius: radius,
		},
	}
}

// Advance displaces the ball by velocity × dt; bounds are the loop's concern
func (b *Ball) Advance(dt time.Duration) {
	physics.Integrate(&b.body, dt)
}

// BoundingBox returns the square of side 2r around the center
func (b *Ball) BoundingBox() core.Box {
	return b.body.Bounds()
}

func (b *Ball) ReflectX() { physics.ReflectX(&b.body) }
func (b *Ball) ReflectY() { physics.ReflectY(&b.body) }

// ForceXNegative flips vx only if it points right, returns true on flip
func (b *Ball) ForceXNegative() bool { return physics.ForceX(&b.body, -1) }

// ForceXPositive flips vx only if it points left, returns true on flip
func (b *Ball) ForceXPositive() bool { return physics.ForceX(&b.body, 1) }

// ForceYNegative flips vy only if it points down, returns true on flip
func (b *Ball) ForceYNegative() bool { return physics.ForceY(&b.body, -1) }

// ForceYPositive flips vy only if it points up, returns true on flip
func (b *Ball) ForceYPositive() bool { return physics.ForceY(&b.body, 1) }

// SpeedUp scales velocity by factor
func (b *Ball) SpeedUp(factor float64) {
	physics.ScaleVelocity(&b.body, factor)
}

func (b *Ball) Position() mgl64.Vec2 { return b.body.Pos }
func (b *Ball) Velocity() mgl64.Vec2 { return b.body.Vel }
func (b *Ball) Radius() float64      { return b.body.Radius }
func (b *Ball) Speed() float64       { return physics.Speed(&b.body) }

// place teleports the ball; test hook
func (b *Ball) place(x, y float64) {
	b.body.Pos = mgl64.Vec2{x, y}
}

// setVelocity overrides velocity; test hook
func (b *Ball) setVelocity(vx, vy float64) {
	b.body.Vel = mgl64.Vec2{vx, vy}
}
