// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

var three = big.NewInt(3)

// Curve houses the parameters of a short Weierstrass curve
// y^2 = x^3 + ax + b over a prime field.
type Curve struct {
	a *FieldElement
	b *FieldElement
}

// NewCurve returns the curve y^2 = x^3 + ax + b.  Both parameters must belong
// to the same field, otherwise an error of kind ErrFieldMismatch is returned.
func NewCurve(a, b *FieldElement) (*Curve, error) {
	if err := a.checkField("build a curve from", b); err != nil {
		return nil, err
	}
	return &Curve{a: a, b: b}, nil
}

// A returns the a parameter of the curve.
func (c *Curve) A() *FieldElement {
	return c.a
}

// B returns the b parameter of the curve.
func (c *Curve) B() *FieldElement {
	return c.b
}

// Equals returns whether or not both curves have the same parameters.
func (c *Curve) Equals(other *Curve) bool {
	return c == other || (c.a.Equals(other.a) && c.b.Equals(other.b))
}

// IsOnCurve returns whether or not (x, y) satisfies the curve equation.  Both
// coordinates must belong to the field of the curve.
func (c *Curve) IsOnCurve(x, y *FieldElement) bool {
	if !c.a.SameField(x) || !c.a.SameField(y) {
		return false
	}
	lhs := y.Square()
	rhs := x.Square().mul(x).add(c.a.mul(x)).add(c.b)
	return lhs.Equals(rhs)
}

// String returns the curve equation.
func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %vx + %v mod %v", c.a.value, c.b.value,
		c.a.modulus)
}

// Point is an element of the group of points on a Curve.  The point at
// infinity, which is the identity of the group, has nil coordinates.
//
// Point values are immutable.  The group operations return new points.
type Point struct {
	x     *FieldElement
	y     *FieldElement
	curve *Curve
}

// NewPoint returns the point (x, y) on the provided curve.  Passing nil for
// both coordinates returns the point at infinity.  An error of kind
// ErrPointNotOnCurve is returned when the coordinates do not satisfy the
// curve equation, and ErrFieldMismatch when they don't belong to the field of
// the curve.
func NewPoint(x, y *FieldElement, curve *Curve) (*Point, error) {
	if x == nil && y == nil {
		return Infinity(curve), nil
	}
	if x == nil || y == nil {
		return nil, makeError(ErrPointNotOnCurve, "a point must have "+
			"either both or neither coordinates")
	}
	if err := curve.a.checkField("place a point on", x); err != nil {
		return nil, err
	}
	if err := curve.a.checkField("place a point on", y); err != nil {
		return nil, err
	}
	if !curve.IsOnCurve(x, y) {
		str := fmt.Sprintf("(%v, %v) is not on the curve %v", x.value,
			y.value, curve)
		return nil, makeError(ErrPointNotOnCurve, str)
	}

	return &Point{x: x, y: y, curve: curve}, nil
}

// Infinity returns the point at infinity of the provided curve.
func Infinity(curve *Curve) *Point {
	return &Point{curve: curve}
}

// X returns the x coordinate of the point, or nil for the point at infinity.
func (p *Point) X() *FieldElement {
	return p.x
}

// Y returns the y coordinate of the point, or nil for the point at infinity.
func (p *Point) Y() *FieldElement {
	return p.y
}

// Curve returns the curve the point belongs to.
func (p *Point) Curve() *Curve {
	return p.curve
}

// IsInfinity returns whether or not the point is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.x == nil
}

// Equals returns whether or not both points have the same coordinates on the
// same curve.
func (p *Point) Equals(other *Point) bool {
	return p.x.Equals(other.x) && p.y.Equals(other.y) &&
		p.curve.Equals(other.curve)
}

// String returns a human-readable form of the point.
func (p *Point) String() string {
	if p.IsInfinity() {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%v,%v)_%v_%v FieldElement(%v)", p.x.value,
		p.y.value, p.curve.a.value, p.curve.b.value, p.x.modulus)
}

// Add returns p + q under the group law of the curve.  An error of kind
// ErrCurveMismatch is returned when the points lie on different curves.
func (p *Point) Add(q *Point) (*Point, error) {
	if !p.curve.Equals(q.curve) {
		str := fmt.Sprintf("points %v, %v are not on the same curve", p, q)
		return nil, makeError(ErrCurveMismatch, str)
	}

	// The identity absorbs into the other operand.
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	// Additive inverses sit on a vertical line, so the sum is the identity.
	if p.x.Equals(q.x) && !p.y.Equals(q.y) {
		return Infinity(p.curve), nil
	}

	// Distinct x coordinates use the chord through both points:
	//   s = (y2 - y1) / (x2 - x1)
	//   x3 = s^2 - x1 - x2
	//   y3 = s(x1 - x3) - y1
	if !p.x.Equals(q.x) {
		s := q.y.sub(p.y).div(q.x.sub(p.x))
		x3 := s.Square().sub(p.x).sub(q.x)
		y3 := s.mul(p.x.sub(x3)).sub(p.y)
		return NewPoint(x3, y3, p.curve)
	}

	// At this point p == q.  The tangent is vertical when y is zero.
	if p.y.IsZero() {
		return Infinity(p.curve), nil
	}

	// Doubling uses the tangent line:
	//   s = (3x1^2 + a) / 2y1
	//   x3 = s^2 - 2x1
	//   y3 = s(x1 - x3) - y1
	s := p.x.Square().ScalarMul(three).add(p.curve.a).div(p.y.ScalarMul(two))
	x3 := s.Square().sub(p.x.ScalarMul(two))
	y3 := s.mul(p.x.sub(x3)).sub(p.y)
	return NewPoint(x3, y3, p.curve)
}

// ScalarMult returns k*p using double-and-add starting from the least
// significant bit of k.  Multiplying by zero yields the point at infinity and
// a negative k results in an error of kind ErrNegativeScalar.
func (p *Point) ScalarMult(k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		str := fmt.Sprintf("scalar %v is negative", k)
		return nil, makeError(ErrNegativeScalar, str)
	}

	result := Infinity(p.curve)
	current := p
	bitLen := k.BitLen()
	for i := 0; i < bitLen; i++ {
		var err error
		if k.Bit(i) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return nil, err
			}
		}

		// The final doubling would never be used.
		if i == bitLen-1 {
			break
		}
		current, err = current.Add(current)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
