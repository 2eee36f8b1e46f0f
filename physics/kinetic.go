package physics

import (
	"time"

	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/vmath"
)

// Integrate displaces the body by velocity × dt; no bounds handling
func Integrate(b *core.Body, dt time.Duration) {
	b.Pos = b.Pos.Add(b.Vel.Mul(dt.Seconds()))
}

// ReflectX negates horizontal velocity unconditionally
func ReflectX(b *core.Body) {
	b.Vel = vmath.ReflectAxis(b.Vel, vmath.AxisX)
}

// ReflectY negates vertical velocity unconditionally
func ReflectY(b *core.Body) {
	b.Vel = vmath.ReflectAxis(b.Vel, vmath.AxisY)
}

// ForceX points horizontal velocity toward sign (+1 or -1), returns true if it flipped
// Idempotent: repeated calls while penetrating a wall do not oscillate
func ForceX(b *core.Body, sign float64) bool {
	before := b.Vel
	b.Vel = vmath.ForceSign(b.Vel, vmath.AxisX, sign)
	return before != b.Vel
}

// ForceY points vertical velocity toward sign (+1 or -1), returns true if it flipped
func ForceY(b *core.Body, sign float64) bool {
	before := b.Vel
	b.Vel = vmath.ForceSign(b.Vel, vmath.AxisY, sign)
	return before != b.Vel
}

// ScaleVelocity multiplies both velocity components by factor
func ScaleVelocity(b *core.Body, factor float64) {
	b.Vel = b.Vel.Mul(factor)
}

// Speed returns the velocity magnitude
func Speed(b *core.Body) float64 {
	return b.Vel.Len()
}
