package gf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akalin/gfnum/factor"
	"github.com/akalin/gfnum/numtheory"
)

// Element is a value in [0, order) together with a copy of its
// field. The zero Element is 0 in GF(2**1).
//
// Plus, Minus, Times and Mod return a new Element; Add, Sub, Mul and
// Rem update the receiver in place and leave it unchanged on error.
type Element struct {
	value int64
	field Field
}

// NewElement returns n reduced into GF(2**1).
func NewElement(n int64) Element {
	return NewElementInField(n, DefaultField())
}

// NewElementInField returns n reduced into f.
func NewElementInField(n int64, f Field) Element {
	f = f.valid()
	return Element{value: numtheory.Mod(n, f.order), field: f}
}

// Value returns the element's integer value, in [0, order).
func (e Element) Value() int64 {
	return e.value
}

// Field returns a copy of the element's field.
func (e Element) Field() Field {
	return e.field.valid()
}

func (e Element) order() int64 {
	return e.Field().Order()
}

func (e Element) checkOrder(op string, o Element) error {
	if e.order() != o.order() {
		return fmt.Errorf("%w: %v %s %v", ErrFieldMismatch, e, op, o)
	}
	return nil
}

func (e Element) with(value int64) Element {
	return Element{value: value, field: e.Field()}
}

// Plus returns e + o.
func (e Element) Plus(o Element) (Element, error) {
	if err := e.checkOrder("+", o); err != nil {
		return Element{}, err
	}
	return e.with(numtheory.AddMod(e.value, o.value, e.order())), nil
}

// Minus returns e - o.
func (e Element) Minus(o Element) (Element, error) {
	if err := e.checkOrder("-", o); err != nil {
		return Element{}, err
	}
	return e.with(numtheory.SubMod(e.value, o.value, e.order())), nil
}

// Times returns e * o.
func (e Element) Times(o Element) (Element, error) {
	if err := e.checkOrder("*", o); err != nil {
		return Element{}, err
	}
	return e.with(numtheory.MulMod(e.value, o.value, e.order())), nil
}

// Mod returns the remainder of e's value divided by o's value. It
// fails if o is zero.
func (e Element) Mod(o Element) (Element, error) {
	if err := e.checkOrder("%", o); err != nil {
		return Element{}, err
	}
	if o.value == 0 {
		return Element{}, fmt.Errorf("%w: %v %% %v", ErrDivisionByZero, e, o)
	}
	// Both values are in [0, order), so the remainder already is.
	return e.with(e.value % o.value), nil
}

func (e *Element) assign(r Element, err error) error {
	if err != nil {
		return err
	}
	*e = r
	return nil
}

// Add sets e to e + o.
func (e *Element) Add(o Element) error {
	return e.assign(e.Plus(o))
}

// Sub sets e to e - o.
func (e *Element) Sub(o Element) error {
	return e.assign(e.Minus(o))
}

// Mul sets e to e * o.
func (e *Element) Mul(o Element) error {
	return e.assign(e.Times(o))
}

// Rem sets e to e % o.
func (e *Element) Rem(o Element) error {
	return e.assign(e.Mod(o))
}

// The *Int variants treat k as an element of e's field, so only the
// modulo forms can fail.

// PlusInt returns e + k.
func (e Element) PlusInt(k int64) Element {
	r, _ := e.Plus(e.Field().NewElement(k))
	return r
}

// MinusInt returns e - k.
func (e Element) MinusInt(k int64) Element {
	r, _ := e.Minus(e.Field().NewElement(k))
	return r
}

// TimesInt returns e * k.
func (e Element) TimesInt(k int64) Element {
	r, _ := e.Times(e.Field().NewElement(k))
	return r
}

// ModInt returns e % k, where k is first reduced into e's field.
func (e Element) ModInt(k int64) (Element, error) {
	return e.Mod(e.Field().NewElement(k))
}

// AddInt sets e to e + k.
func (e *Element) AddInt(k int64) {
	*e = e.PlusInt(k)
}

// SubInt sets e to e - k.
func (e *Element) SubInt(k int64) {
	*e = e.MinusInt(k)
}

// MulInt sets e to e * k.
func (e *Element) MulInt(k int64) {
	*e = e.TimesInt(k)
}

// RemInt sets e to e % k.
func (e *Element) RemInt(k int64) error {
	return e.assign(e.ModInt(k))
}

// Cmp compares the values of e and o, returning -1, 0 or +1. The
// orders must match.
func (e Element) Cmp(o Element) (int, error) {
	if err := e.checkOrder("<=>", o); err != nil {
		return 0, err
	}
	switch {
	case e.value < o.value:
		return -1, nil
	case e.value > o.value:
		return 1, nil
	}
	return 0, nil
}

// Less reports whether e < o.
func (e Element) Less(o Element) (bool, error) {
	c, err := e.Cmp(o)
	return c < 0, err
}

// LessOrEqual reports whether e <= o.
func (e Element) LessOrEqual(o Element) (bool, error) {
	c, err := e.Cmp(o)
	return err == nil && c <= 0, err
}

// Greater reports whether e > o.
func (e Element) Greater(o Element) (bool, error) {
	c, err := e.Cmp(o)
	return c > 0, err
}

// GreaterOrEqual reports whether e >= o.
func (e Element) GreaterOrEqual(o Element) (bool, error) {
	c, err := e.Cmp(o)
	return err == nil && c >= 0, err
}

// Equal reports whether e and o have the same value and the same
// characteristic. The degree is not compared, so 3 in GF(5**1) equals
// 3 in GF(5**2) even though the relational methods would reject that
// pair.
func (e Element) Equal(o Element) bool {
	return e.value == o.value && e.Field().Characteristic() == o.Field().Characteristic()
}

// NotEqual is !e.Equal(o).
func (e Element) NotEqual(o Element) bool {
	return !e.Equal(o)
}

// IsPrime reports whether e's value is prime.
func (e Element) IsPrime() bool {
	return IsPrime(e.value)
}

// PrimeFactors returns the prime factors of e's value as elements of
// e's field, using the default Factorizer. It is empty if the value is
// prime or less than 2.
func (e Element) PrimeFactors() []Element {
	return e.PrimeFactorsWith(factor.Default())
}

// PrimeFactorsWith is like PrimeFactors, but uses f.
func (e Element) PrimeFactorsWith(f *factor.Factorizer) []Element {
	return e.elementsOf(f.Factor(e.value))
}

func (e Element) elementsOf(values []int64) []Element {
	elements := make([]Element, len(values))
	for i, v := range values {
		elements[i] = e.Field().NewElement(v)
	}
	return elements
}

// FactorString formats e's factorization as "12=2*2*3". If there
// are no factors it returns "13=13*1".
func (e Element) FactorString() string {
	return FormatFactors(e.value, e.PrimeFactors())
}

// FormatFactors formats value and its factors the way FactorString
// does.
func FormatFactors(value int64, factors []Element) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(value, 10))
	b.WriteByte('=')
	if len(factors) == 0 {
		b.WriteString(strconv.FormatInt(value, 10))
		b.WriteString("*1")
		return b.String()
	}
	for i, f := range factors {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(strconv.FormatInt(f.value, 10))
	}
	return b.String()
}
