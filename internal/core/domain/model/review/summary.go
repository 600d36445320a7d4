package review

import "github.com/shopspring/decimal"

// Summary is the aggregate rating of one menu item.
type Summary struct {
	Count   int
	Average decimal.Decimal
}

// Summarize averages ratings rounded to one decimal place. No reviews averages to zero.
func Summarize(reviews []*Review) Summary {
	if len(reviews) == 0 {
		return Summary{Average: decimal.Zero}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating()
	}
	avg := decimal.NewFromInt(int64(sum)).
		DivRound(decimal.NewFromInt(int64(len(reviews))), 4).
		Round(1)
	return Summary{Count: len(reviews), Average: avg}
}
