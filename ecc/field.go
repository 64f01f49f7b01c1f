// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// FieldElement is an element of the finite field Z/pZ for a prime modulus p.
// The primality of the modulus is not verified; it is the caller's
// responsibility.
//
// FieldElement values are immutable.  Every arithmetic method returns a new
// element and leaves both operands untouched.
type FieldElement struct {
	value   *big.Int
	modulus *big.Int
}

// NewFieldElement returns the element value of the field with the provided
// modulus.  An error of kind ErrFieldRange is returned when value is not in
// [0, modulus) or when the modulus is less than two.
func NewFieldElement(value, modulus *big.Int) (*FieldElement, error) {
	if modulus.Cmp(two) < 0 {
		str := fmt.Sprintf("modulus %v is too small to define a field",
			modulus)
		return nil, makeError(ErrFieldRange, str)
	}
	if value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		str := fmt.Sprintf("number %v not in field range 0 to %v", value,
			new(big.Int).Sub(modulus, one))
		return nil, makeError(ErrFieldRange, str)
	}

	return &FieldElement{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// newElement reduces v into the field of f and returns it as a new element
// that shares the modulus of f.  v is owned by the returned element.
func (f *FieldElement) newElement(v *big.Int) *FieldElement {
	return &FieldElement{value: v.Mod(v, f.modulus), modulus: f.modulus}
}

// Value returns a copy of the integer value of the element.
func (f *FieldElement) Value() *big.Int {
	return new(big.Int).Set(f.value)
}

// Modulus returns a copy of the modulus of the field the element belongs to.
func (f *FieldElement) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// IsZero returns whether or not the element is the additive identity.
func (f *FieldElement) IsZero() bool {
	return f.value.Sign() == 0
}

// IsOdd returns whether or not the integer value of the element is odd.
func (f *FieldElement) IsOdd() bool {
	return f.value.Bit(0) == 1
}

// SameField returns whether or not both elements belong to the same field.
func (f *FieldElement) SameField(other *FieldElement) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// Equals returns whether or not the two elements hold the same value in the
// same field.  A nil element is only equal to another nil element.
func (f *FieldElement) Equals(other *FieldElement) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.value.Cmp(other.value) == 0 && f.SameField(other)
}

// checkField returns an ErrFieldMismatch error when other does not belong to
// the field of f.
func (f *FieldElement) checkField(op string, other *FieldElement) error {
	if f.SameField(other) {
		return nil
	}
	str := fmt.Sprintf("cannot %s two numbers in different fields "+
		"(%v and %v)", op, f.modulus, other.modulus)
	return makeError(ErrFieldMismatch, str)
}

// Add returns f + other.
func (f *FieldElement) Add(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField("add", other); err != nil {
		return nil, err
	}
	return f.add(other), nil
}

// Sub returns f - other.
func (f *FieldElement) Sub(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField("subtract", other); err != nil {
		return nil, err
	}
	return f.sub(other), nil
}

// Mul returns f * other.
func (f *FieldElement) Mul(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField("multiply", other); err != nil {
		return nil, err
	}
	return f.mul(other), nil
}

// Div returns f / other computed as f * other^(p-2), the inverse given by
// Fermat's little theorem.  Dividing by zero yields zero.
func (f *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField("divide", other); err != nil {
		return nil, err
	}
	return f.div(other), nil
}

// Pow returns f^exponent.  The exponent is first reduced modulo p-1 into the
// range [0, p-1), so negative exponents compute powers of the inverse.
func (f *FieldElement) Pow(exponent *big.Int) *FieldElement {
	order := new(big.Int).Sub(f.modulus, one)
	n := new(big.Int).Mod(exponent, order)
	return f.newElement(new(big.Int).Exp(f.value, n, f.modulus))
}

// ScalarMul returns coefficient * f.  The coefficient is an arbitrary integer
// and need not be a member of the field.
func (f *FieldElement) ScalarMul(coefficient *big.Int) *FieldElement {
	return f.newElement(new(big.Int).Mul(f.value, coefficient))
}

// Neg returns -f.
func (f *FieldElement) Neg() *FieldElement {
	return f.newElement(new(big.Int).Neg(f.value))
}

// Square returns f^2.
func (f *FieldElement) Square() *FieldElement {
	return f.mul(f)
}

// String returns the element in the form FieldElement_p(v).
func (f *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", f.modulus, f.value)
}

// The unchecked variants below assume both operands share a field.  They are
// used by the group law where that has already been established.

func (f *FieldElement) add(other *FieldElement) *FieldElement {
	return f.newElement(new(big.Int).Add(f.value, other.value))
}

func (f *FieldElement) sub(other *FieldElement) *FieldElement {
	return f.newElement(new(big.Int).Sub(f.value, other.value))
}

func (f *FieldElement) mul(other *FieldElement) *FieldElement {
	return f.newElement(new(big.Int).Mul(f.value, other.value))
}

func (f *FieldElement) div(other *FieldElement) *FieldElement {
	exp := new(big.Int).Sub(f.modulus, two)
	inv := new(big.Int).Exp(other.value, exp, f.modulus)
	return f.newElement(inv.Mul(inv, f.value))
}
