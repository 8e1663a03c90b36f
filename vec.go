package sdf

// Vec2 represents a 2D point or vector with float32 components. The whole
// kernel works in float32 throughout, so intermediate results never gain
// precision that the rest of the pipeline doesn't have.
type Vec2 struct {
	X, Y float32
}

// V is a convenience constructor for Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulVec returns the component-wise product of two vectors.
func (v Vec2) MulVec(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product (a scalar: the z component of the
// 3D cross product of the two vectors extended with z=0).
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// LengthSquared returns the squared length of the vector.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return sqrtf(v.LengthSquared())
}

// DistanceSquared returns the squared distance between two points.
func (v Vec2) DistanceSquared(o Vec2) float32 {
	return v.Sub(o).LengthSquared()
}

// Distance returns the distance between two points.
func (v Vec2) Distance(o Vec2) float32 {
	return sqrtf(v.DistanceSquared(o))
}

// Lerp performs linear interpolation between v and o. t=0 returns v, t=1
// returns o.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: minf(v.X, o.X), Y: minf(v.Y, o.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: maxf(v.X, o.X), Y: maxf(v.Y, o.Y)}
}
