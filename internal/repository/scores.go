package repository

import "context"

// ScoreWriter combines the two subject repositories behind the rating
// service's score store.
type ScoreWriter struct {
	Estates *EstateRepository
	Users   *UserRepository
}

// UpdateEstateScore delegates to the estate repository.
func (w ScoreWriter) UpdateEstateScore(ctx context.Context, estateID string, score float64) error {
	return w.Estates.UpdateEstateScore(ctx, estateID, score)
}

// UpdateUserScore delegates to the user repository.
func (w ScoreWriter) UpdateUserScore(ctx context.Context, userID string, score float64) error {
	return w.Users.UpdateUserScore(ctx, userID, score)
}
