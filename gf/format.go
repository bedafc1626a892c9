package gf

import (
	"fmt"
	"strconv"
)

// String returns "GF(p**l)".
func (f Field) String() string {
	return fmt.Sprintf("GF(%d**%d)", f.Characteristic(), f.Degree())
}

// String returns "v GF(p**l)".
func (e Element) String() string {
	return fmt.Sprintf("%d %v", e.value, e.Field())
}

func scanInts(state fmt.ScanState, n int) ([]int64, error) {
	ints := make([]int64, n)
	for i := range ints {
		tok, err := state.Token(true, nil)
		if err != nil {
			return nil, err
		}
		if len(tok) == 0 {
			return nil, fmt.Errorf("expected %d integers, got %d", n, i)
		}
		ints[i], err = strconv.ParseInt(string(tok), 10, 64)
		if err != nil {
			return nil, err
		}
	}
	return ints, nil
}

// Scan reads a field as "p l". The field is validated once both
// numbers are read; on error f is left unchanged.
func (f *Field) Scan(state fmt.ScanState, verb rune) error {
	ints, err := scanInts(state, 2)
	if err != nil {
		return err
	}
	g, err := NewFieldWithDegree(ints[0], ints[1])
	if err != nil {
		return err
	}
	*f = g
	return nil
}

// Scan reads an element as "v p l". The field is validated first,
// then v is reduced into it; on error e is left unchanged.
func (e *Element) Scan(state fmt.ScanState, verb rune) error {
	ints, err := scanInts(state, 3)
	if err != nil {
		return err
	}
	f, err := NewFieldWithDegree(ints[1], ints[2])
	if err != nil {
		return err
	}
	*e = NewElementInField(ints[0], f)
	return nil
}

// ParseField parses the "p l" form read by Field.Scan.
func ParseField(s string) (Field, error) {
	var f Field
	if _, err := fmt.Sscan(s, &f); err != nil {
		return Field{}, err
	}
	return f, nil
}

// ParseElement parses the "v p l" form read by Element.Scan.
func ParseElement(s string) (Element, error) {
	var e Element
	if _, err := fmt.Sscan(s, &e); err != nil {
		return Element{}, err
	}
	return e, nil
}
