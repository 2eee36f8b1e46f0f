package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis indexes a component of a 2D vector
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

// ReflectAxis returns v with the component on axis negated
func ReflectAxis(v mgl64.Vec2, axis Axis) mgl64.Vec2 {
	v[axis] = -v[axis]
	return v
}

// ForceSign returns v with the component on axis pointing in the sign direction
// A component already pointing that way (or zero) is left untouched
func ForceSign(v mgl64.Vec2, axis Axis, sign float64) mgl64.Vec2 {
	if v[axis]*sign < 0 {
		v[axis] = -v[axis]
	}
	return v
}

// IsZero reports whether both components are zero
func IsZero(v mgl64.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// IsFinite reports whether both components are finite numbers
func IsFinite(v mgl64.Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsInf(v[0], 0) &&
		!math.IsNaN(v[1]) && !math.IsInf(v[1], 0)
}
