package search

// Score returns how loosely pattern occurs in text, between 0 (pattern is
// an exact substring) and 1 (no useful overlap). It is the smallest edit
// distance between pattern and any substring of text, divided by the
// pattern length. Both inputs are expected to be normalized.
func Score(pattern, text []rune) float64 {
	m := len(pattern)
	if m == 0 {
		return 0
	}

	dist := substringDistance(pattern, text)
	return clamp(float64(dist) / float64(m))
}

// substringDistance computes the minimum Levenshtein distance between
// pattern and any substring of text (Sellers' algorithm). The match may
// start anywhere in text, so row 0 is zero for every column.
func substringDistance(pattern, text []rune) int {
	m := len(pattern)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for i := range prev {
		prev[i] = i
	}

	best := prev[m]
	for _, tc := range text {
		cur[0] = 0
		for i := 1; i <= m; i++ {
			cost := 1
			if pattern[i-1] == tc {
				cost = 0
			}
			cur[i] = min(prev[i-1]+cost, prev[i]+1, cur[i-1]+1)
		}
		if cur[m] < best {
			best = cur[m]
			if best == 0 {
				return 0
			}
		}
		prev, cur = cur, prev
	}

	return best
}
