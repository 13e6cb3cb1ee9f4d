package repositories

import (
	"math"
)

// ratingSummary derives the aggregate rating from the full set of review
// ratings for a provider. The mean is rounded half-up to one decimal; an
// empty set yields {0, 0}.
func ratingSummary(ratings []int) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10, len(ratings)
}
