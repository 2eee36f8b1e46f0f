package core

// Box is an immutable axis-aligned bounding box in board coordinates
// Origin top-left, +x right, +y down
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoxFromCenter builds a box of size w×h centered on (cx, cy)
func BoxFromCenter(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// BoxFromSize builds a box from its top-left corner and dimensions
func BoxFromSize(x, y, w, h float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Center returns the center point of the box
func (b Box) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Intersects reports overlap on both axes
// Closed intervals: boxes sharing an edge intersect
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// ContainedIn reports whether b lies entirely inside o
func (b Box) ContainedIn(o Box) bool {
	return b.MinX >= o.MinX && b.MaxX <= o.MaxX &&
		b.MinY >= o.MinY && b.MaxY <= o.MaxY
}

// Translate returns the box shifted by (dx, dy)
func (b Box) Translate(dx, dy float64) Box {
	return Box{MinX: b.MinX + dx, MinY: b.MinY + dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
}
