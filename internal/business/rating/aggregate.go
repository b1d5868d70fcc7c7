package rating

import "github.com/you-rent/api/pkg/model"

// Average reduces a subject's comments to its aggregate score.
//
// Only comments that carry a score contribute to the sum, but the divisor is
// the count of all comments passed in, scored or not. That is the behavior
// the product has always shipped with (owner comments never carry a score
// and drag the average down); keep it until product says otherwise.
func Average(comments []model.Comment) float64 {
	if len(comments) == 0 {
		return 0
	}
	var sum float64
	for _, c := range comments {
		if c.Score > 0 {
			sum += float64(c.Score)
		}
	}
	return sum / float64(len(comments))
}
