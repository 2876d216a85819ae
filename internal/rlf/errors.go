package rlf

import "errors"

var (
	errUnclosedArgs = errors.New("directive arguments are missing a closing ')'")
	errMalformedArg = errors.New("directive argument is not a \"key:value\" pair")
)

// suggest returns the closest match to name among known by Levenshtein
// distance, or "" if nothing is close enough to be a plausible typo fix.
// Grounds §4.5's "unresolved variables produce suggestions via edit
// distance over known bindings."
func suggest(name string, known []string) string {
	best := ""
	bestDist := -1
	for _, candidate := range known {
		d := levenshtein(name, candidate)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(name) {
		return ""
	}
	return best
}

// maxSuggestDistance scales the acceptable edit distance with name's
// length so a two-letter typo on a long identifier is still suggested,
// while a wildly different short name isn't.
func maxSuggestDistance(name string) int {
	if len(name) <= 4 {
		return 1
	}
	return len(name) / 3
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
