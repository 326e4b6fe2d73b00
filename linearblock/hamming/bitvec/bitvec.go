// Package bitvec normalizes literal inputs (integers, digit strings, sequences and arrays)
// into fixed length GF(2) vectors.
package bitvec

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	mat "github.com/nathanhack/sparsemat"
)

var (
	// ErrType is returned when the input is not an integer, a string, a sequence or an array.
	ErrType = errors.New("input must be an integer, a string, a slice or an array")
	// ErrValue is returned when the input has the wrong length or holds values other than 0 and 1.
	ErrValue = errors.New("invalid bit vector")
)

// Parse converts x into a vector of exactly length bits.
//
// Integers are read digit by digit in base 10, so 1010 becomes [1 0 1 0] (leading zeros
// cannot be expressed this way). Strings have their whitespace removed and must then
// contain only digits. Slices and arrays must hold integers; a []interface{} is checked
// element by element. A mat.SparseVector is accepted as is once its length matches.
func Parse(x interface{}, length int) (mat.SparseVector, error) {
	digits, err := toDigits(x)
	if err != nil {
		return nil, err
	}

	if len(digits) != length {
		return nil, fmt.Errorf("%w: size %v required but found %v", ErrValue, length, len(digits))
	}

	result := mat.CSRVec(length)
	for i, d := range digits {
		if d != 0 && d != 1 {
			return nil, fmt.Errorf("%w: only 0s and 1s allowed but found %v at index %v", ErrValue, d, i)
		}
		result.Set(i, int(d))
	}
	return result, nil
}

func toDigits(x interface{}) ([]int64, error) {
	switch v := x.(type) {
	case nil:
		return nil, ErrType
	case mat.SparseVector:
		digits := make([]int64, v.Len())
		for i := range digits {
			digits[i] = int64(v.At(i))
		}
		return digits, nil
	case string:
		return stringDigits(v)
	}

	value := reflect.ValueOf(x)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return stringDigits(strconv.FormatInt(value.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return stringDigits(strconv.FormatUint(value.Uint(), 10))
	case reflect.Slice, reflect.Array:
		digits := make([]int64, value.Len())
		for i := range digits {
			d, ok := integer(value.Index(i))
			if !ok {
				return nil, fmt.Errorf("%w: only integers allowed but found %v at index %v", ErrValue, value.Index(i), i)
			}
			digits[i] = d
		}
		return digits, nil
	}
	return nil, fmt.Errorf("%w: found %T", ErrType, x)
}

func stringDigits(s string) ([]int64, error) {
	s = strings.Join(strings.FieldsFunc(s, unicode.IsSpace), "")

	digits := make([]int64, 0, len(s))
	for _, r := range s {
		if r < '0' || '9' < r {
			return nil, fmt.Errorf("%w: string input must contain only digits but found %q", ErrValue, r)
		}
		digits = append(digits, int64(r-'0'))
	}
	return digits, nil
}

func integer(v reflect.Value) (int64, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > 1 {
			// anything above 1 fails the binary check; clamp so it can't wrap to 0 or 1
			return 2, true
		}
		return int64(u), true
	}
	return 0, false
}

// Ints returns the bits of v as a slice.
func Ints(v mat.SparseVector) []int {
	if v == nil {
		return nil
	}
	result := make([]int, v.Len())
	for i := range result {
		result[i] = v.At(i)
	}
	return result
}

// Format renders v as its bits, for example [1 0 1 1 0 1 0].
func Format(v mat.SparseVector) string {
	return fmt.Sprint(Ints(v))
}
