// Package gf models GF(p^l) as the ring of integers modulo p^l.
//
// For l > 1 this is not the Galois field of that order: elements are
// plain residues and multiplication is ordinary modular
// multiplication, not multiplication of polynomials modulo an
// irreducible one.
package gf

import (
	"fmt"

	"github.com/akalin/gfnum/numtheory"
)

// Field describes the ring of integers modulo characteristic^degree.
// The zero Field is not valid; use DefaultField or one of the
// constructors.
type Field struct {
	characteristic, degree int64
	order                  int64
}

// DefaultField returns GF(2**1).
func DefaultField() Field {
	return Field{characteristic: 2, degree: 1, order: 2}
}

// IsPrime reports whether x is prime. It needs no field.
func IsPrime(x int64) bool {
	return numtheory.IsPrime(x)
}

// NewField returns the field of degree 1 with characteristic p. The
// sign of p is ignored.
func NewField(p int64) (Field, error) {
	return NewFieldWithDegree(p, 1)
}

// NewFieldWithDegree returns the field of order p^l. The sign of p is
// ignored.
func NewFieldWithDegree(p, l int64) (Field, error) {
	p = numtheory.Abs(p)
	if err := checkCharacteristic(p); err != nil {
		return Field{}, err
	}
	if err := checkDegree(l); err != nil {
		return Field{}, err
	}
	order, err := computeOrder(p, l)
	if err != nil {
		return Field{}, err
	}
	return Field{characteristic: p, degree: l, order: order}, nil
}

func checkCharacteristic(p int64) error {
	if p == 0 {
		return fmt.Errorf("%w: characteristic is zero", ErrInvalidField)
	}
	if !numtheory.IsPrime(p) {
		return fmt.Errorf("%w: characteristic %d is not prime", ErrInvalidField, p)
	}
	return nil
}

func checkDegree(l int64) error {
	if l < 1 {
		return fmt.Errorf("%w: degree %d is less than 1", ErrInvalidField, l)
	}
	return nil
}

func computeOrder(p, l int64) (int64, error) {
	order, err := numtheory.Pow(p, l)
	if err != nil {
		return 0, fmt.Errorf("%w: %d**%d", ErrOrderOverflow, p, l)
	}
	return order, nil
}

func (f Field) valid() Field {
	if f.order == 0 {
		return DefaultField()
	}
	return f
}

// Characteristic returns p.
func (f Field) Characteristic() int64 {
	return f.valid().characteristic
}

// Degree returns l.
func (f Field) Degree() int64 {
	return f.valid().degree
}

// Order returns p^l, the number of elements.
func (f Field) Order() int64 {
	return f.valid().order
}

// SetCharacteristic changes p, keeping the degree. On error f is left
// unchanged.
func (f *Field) SetCharacteristic(p int64) error {
	g, err := NewFieldWithDegree(p, f.Degree())
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// SetDegree changes l, keeping the characteristic. On error f is left
// unchanged.
func (f *Field) SetDegree(l int64) error {
	g, err := NewFieldWithDegree(f.Characteristic(), l)
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// Equal reports whether f and g have the same order.
func (f Field) Equal(g Field) bool {
	return f.Order() == g.Order()
}

// NewElement returns k reduced into this field.
func (f Field) NewElement(k int64) Element {
	return NewElementInField(k, f)
}

// GCD returns the greatest common divisor of the values of a and b,
// as an element of f. Both must have f's order. It is computed by
// repeated subtraction, so it takes time linear in the values.
func (f Field) GCD(a, b Element) (Element, error) {
	if a.Field().Order() != f.Order() || b.Field().Order() != f.Order() {
		return Element{}, fmt.Errorf("%w: gcd of %v and %v in %v", ErrFieldMismatch, a, b, f)
	}
	if a.Value() == 0 && b.Value() == 0 {
		return Element{}, ErrGCDUndefined
	}
	return f.NewElement(numtheory.SubtractiveGCD(a.Value(), b.Value())), nil
}
