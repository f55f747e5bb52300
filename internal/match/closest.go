package match

// Thresholds for Closest.
const (
	MaxDistance   = 2
	MinSimilarity = 0.6
)

// Closest returns the candidate nearest to name, provided it differs by at
// most MaxDistance edits and is at least MinSimilarity similar. An exact
// match is not a near miss and returns false. Ties go to the earlier
// candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, bestDist := "", MaxDistance+1

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		d := Levenshtein(name, c)
		if d < bestDist && Similarity(name, c) >= MinSimilarity {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
