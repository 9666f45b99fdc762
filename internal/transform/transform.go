// Package transform computes sticker transforms from raw gesture input.
// It holds no state; callers capture gesture-start values and pass them in.
package transform

import "math"

// Default limits and offsets.
const (
	MinScale        = 0.5
	MaxScale        = 2.0
	SnapStep        = 45.0
	DuplicateOffset = 20.0
)

// Point is a position in canvas points.
type Point struct{ X, Y float64 }

// Vec is a displacement in canvas points.
type Vec struct{ DX, DY float64 }

// Add returns p displaced by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the displacement from o to p.
func (p Point) Sub(o Point) Vec {
	return Vec{DX: p.X - o.X, DY: p.Y - o.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// ClampPoint returns p moved to the nearest point inside r.
func (r Rect) ClampPoint(p Point) Point {
	return Point{
		X: Clamp(p.X, r.X, r.X+max(r.W, 0)),
		Y: Clamp(p.Y, r.Y, r.Y+max(r.H, 0)),
	}
}

// Limits bounds the scale of a sticker.
type Limits struct {
	MinScale float64
	MaxScale float64
}

// DefaultLimits returns the standard [0.5, 2.0] scale range.
func DefaultLimits() Limits {
	return Limits{MinScale: MinScale, MaxScale: MaxScale}
}

// ClampScale bounds s to the limits.
func (l Limits) ClampScale(s float64) float64 {
	return Clamp(s, l.MinScale, l.MaxScale)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the angle in degrees from center to p, atan2-based.
func Angle(center, p Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}

// Normalize maps deg into [0, 360).
func Normalize(deg float64) float64 {
	n := math.Mod(deg, 360)
	if n < 0 {
		n += 360
	}
	if n == 360 {
		return 0
	}
	return n
}

// Snap rounds deg to the nearest multiple of step. A non-positive step
// returns deg unchanged.
func Snap(deg, step float64) float64 {
	if step <= 0 {
		return deg
	}
	return math.Round(deg/step) * step
}

// Drag returns start displaced by delta. When bounds is non-nil the result is
// clamped into it.
func Drag(start Point, delta Vec, bounds *Rect) Point {
	p := start.Add(delta)
	if bounds != nil {
		p = bounds.ClampPoint(p)
	}
	return p
}

// Resize returns the uniform scale for a corner-handle gesture: the start
// scale s0 multiplied by the ratio of the current pointer distance d to the
// start distance d0, clamped to the limits. A zero d0 leaves the ratio at 1.
func Resize(s0, d0, d float64, l Limits) float64 {
	if d0 <= 0 {
		return l.ClampScale(s0)
	}
	return l.ClampScale(s0 * (d / d0))
}

// Rotate returns the rotation for a rotation-handle gesture: r0 plus the
// pointer's angular travel from a0 to a. With snap the result is rounded to
// the nearest multiple of SnapStep.
func Rotate(r0, a0, a float64, snap bool) float64 {
	return RotateStep(r0, a0, a, snapStep(snap, SnapStep))
}

// RotateStep is Rotate with an explicit snap step; step <= 0 disables snapping.
func RotateStep(r0, a0, a, step float64) float64 {
	return Snap(r0+(a-a0), step)
}

// Pinch combines a two-finger gesture offset with the values captured at
// gesture start: scale s0*s clamped to the limits, rotation r0+r.
func Pinch(s0, r0, s, r float64, l Limits) (scale, rotation float64) {
	return l.ClampScale(s0 * s), r0 + r
}

func snapStep(snap bool, step float64) float64 {
	if !snap {
		return 0
	}
	return step
}
