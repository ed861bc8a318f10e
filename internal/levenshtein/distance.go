// Package levenshtein computes edit distances for domain typo detection.
package levenshtein

// Distance returns the Levenshtein edit distance between two strings,
// operating on runes. Memory use is O(min(m,n)).
func Distance(s, t string) int {
	a := []rune(s)
	b := []rune(t)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j, bc := range b {
		prev := row[0]
		row[0] = j + 1
		for i, ac := range a {
			cost := 1
			if ac == bc {
				cost = 0
			}
			d := min(row[i]+1, min(row[i+1]+1, prev+cost))
			prev = row[i+1]
			row[i+1] = d
		}
	}

	return row[len(a)]
}

// Within reports whether Distance(s, t) <= max, short-circuiting on the
// length difference since that is a lower bound on the distance.
func Within(s, t string, max int) bool {
	diff := len([]rune(s)) - len([]rune(t))
	if diff < 0 {
		diff = -diff
	}
	if diff > max {
		return false
	}
	return Distance(s, t) <= max
}
