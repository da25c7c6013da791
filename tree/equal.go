package tree

import (
	"math"
)

// Equal compares two tree values loosely:
//   - numbers compare by numeric value, so 1 equals 1.0
//   - a numeric string equals the number it spells, so "1" equals 1
//   - mappings are equal when they hold the same keys with equal values,
//     regardless of entry order
//   - a sequence equals a mapping whose keys are its positions
//
// Values that are not tree values are never equal to anything.
func Equal(a, b any) bool {
	a, aok := Plain(a)
	b, bok := Plain(b)
	if !aok || !bok {
		return false
	}

	return equal(a, b)
}

func equal(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil

	case bool:
		bv, ok := b.(bool)
		return ok && av == bv

	case string:
		switch bv := b.(type) {
		case string:
			return av == bv
		case int, float64:
			f, ok := numericString(av)
			return ok && f == toFloat(bv)
		}
		return false

	case int, float64:
		switch bv := b.(type) {
		case int, float64:
			return toFloat(av) == toFloat(bv)
		case string:
			f, ok := numericString(bv)
			return ok && f == toFloat(av)
		}
		return false

	case []any:
		switch bv := b.(type) {
		case []any:
			if len(av) != len(bv) {
				return false
			}
			for i := range av {
				if !equal(av[i], bv[i]) {
					return false
				}
			}
			return true
		case *Map:
			return equalMaps(listMap(av), bv)
		}
		return false

	case *Map:
		switch bv := b.(type) {
		case *Map:
			return equalMaps(av, bv)
		case []any:
			return equalMaps(av, listMap(bv))
		}
		return false
	}

	return false
}

func equalMaps(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}

	for k, av := range a.All() {
		bv, ok := b.Get(k)
		if !ok || !equal(av, bv) {
			return false
		}
	}

	return true
}

func listMap(items []any) *Map {
	m := NewOrdered[any](len(items))
	for _, item := range items {
		m.Append(item)
	}

	return m
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}

	return math.NaN()
}

func numericString(s string) (float64, bool) {
	return ParseNumber(s)
}
