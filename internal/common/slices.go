package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Compact returns the non-zero elements of s in order, dropping repeats of
// an element already kept.
func Compact[S ~[]E, E comparable](s S) S {
	var zero E

	seen := make(map[E]struct{}, len(s))
	res := make(S, 0, len(s))

	for _, e := range s {
		if e == zero {
			continue
		}

		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		res = append(res, e)
	}

	return res
}
