package match

// Distance returns the Levenshtein distance between a and b counted in
// runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Closest returns the name from names nearest to name after folding. Names
// further away than two edits, or a third of the folded length for long
// names, are not suggested.
func Closest(name string, names []string) (string, bool) {
	folded := Fold(name)
	limit := max(2, len([]rune(folded))/3)

	best, bestDist := "", limit+1
	for _, candidate := range names {
		if d := Distance(folded, Fold(candidate)); d < bestDist {
			best, bestDist = candidate, d
		}
	}

	return best, best != ""
}
