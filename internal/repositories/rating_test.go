package repositories

import "testing"

func TestRatingSummary(t *testing.T) {
	cases := []struct {
		name      string
		ratings   []int
		wantAvg   float64
		wantCount int
	}{
		{"empty", nil, 0, 0},
		{"single five", []int{5}, 5, 1},
		{"exact mean", []int{5, 4, 3}, 4.0, 3},
		{"half rounds up", []int{5, 4, 3, 5}, 4.3, 4}, // mean 4.25
		{"one decimal", []int{5, 4}, 4.5, 2},
		{"all ones", []int{1, 1, 1}, 1, 3},
	}
	for _, c := range cases {
		avg, count := ratingSummary(c.ratings)
		if avg != c.wantAvg || count != c.wantCount {
			t.Errorf("%s: ratingSummary(%v) = (%v, %d), want (%v, %d)",
				c.name, c.ratings, avg, count, c.wantAvg, c.wantCount)
		}
	}
}
