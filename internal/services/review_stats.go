package services

import (
	"math"

	"github.com/Manish0124/portfolio/internal/types"
)

// summarizeRatings folds approved ratings into a mean and a 1..5 histogram.
// total comes from the separate count query.
func summarizeRatings(total int64, ratings []int) types.ReviewStats {
	stats := types.ReviewStats{
		TotalReviews:       total,
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(ratings) == 0 {
		return stats
	}

	sum := 0
	for _, r := range ratings {
		sum += r
		if _, ok := stats.RatingDistribution[r]; ok {
			stats.RatingDistribution[r]++
		}
	}
	stats.AverageRating = float64(sum) / float64(len(ratings))
	return stats
}

// pageOffset returns (page-1)*limit. ok is false when the product does not
// fit in an int; such a page lies past any real result set.
func pageOffset(page, limit int) (offset int, ok bool) {
	if limit > 0 && (page-1 > math.MaxInt/limit || page-1 < math.MinInt/limit) {
		return 0, false
	}
	return (page - 1) * limit, true
}

func paginate(page, limit int, total int64) types.Pagination {
	p := types.Pagination{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		p.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	offset, ok := pageOffset(page, limit)
	p.HasMore = ok && total-int64(limit) > int64(offset)
	return p
}
