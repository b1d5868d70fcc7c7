package rating

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/you-rent/api/pkg/model"
)

// CommentStore abstracts comment persistence for testability.
type CommentStore interface {
	Get(ctx context.Context, id string) (model.Comment, error)
	ByEstate(ctx context.Context, estateID string) ([]model.Comment, error)
	ByProfile(ctx context.Context, profileID string) ([]model.Comment, error)
	Add(ctx context.Context, comment model.Comment) (model.Comment, error)
	UpdateMessage(ctx context.Context, id, message string) error
	Delete(ctx context.Context, id string) error
}

// ScoreStore writes recomputed aggregate scores back to the subject document.
type ScoreStore interface {
	UpdateEstateScore(ctx context.Context, estateID string, score float64) error
	UpdateUserScore(ctx context.Context, userID string, score float64) error
}

// Service owns the comment lifecycle: every addition or deletion recomputes
// the subject's aggregate score and writes it back through the score store.
// Message edits never touch the score.
type Service struct {
	comments CommentStore
	scores   ScoreStore
	log      *slog.Logger
}

func NewService(comments CommentStore, scores ScoreStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{comments: comments, scores: scores, log: log}
}

// AddComment persists the comment and recomputes the subject score.
// The returned comment carries its generated id and the float score the
// subject now holds.
func (s *Service) AddComment(ctx context.Context, comment model.Comment) (model.Comment, float64, error) {
	if err := validateSubject(comment); err != nil {
		return model.Comment{}, 0, err
	}
	if comment.Score < 0 || comment.Score > 5 {
		return model.Comment{}, 0, fmt.Errorf("score %d out of range [1,5]", comment.Score)
	}

	saved, err := s.comments.Add(ctx, comment)
	if err != nil {
		return model.Comment{}, 0, fmt.Errorf("add comment: %w", err)
	}

	score, err := s.recompute(ctx, saved)
	if err != nil {
		return saved, 0, err
	}
	return saved, score, nil
}

// UpdateMessage edits the comment text only.
func (s *Service) UpdateMessage(ctx context.Context, id, message string) error {
	if message == "" {
		return fmt.Errorf("message is required")
	}
	if err := s.comments.UpdateMessage(ctx, id, message); err != nil {
		return fmt.Errorf("update comment %s: %w", id, err)
	}
	return nil
}

// DeleteComment removes the comment and recomputes the subject score from
// the remaining comments.
func (s *Service) DeleteComment(ctx context.Context, id string) (float64, error) {
	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("load comment %s: %w", id, err)
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete comment %s: %w", id, err)
	}
	return s.recompute(ctx, comment)
}

// Recompute recalculates and persists the aggregate score for the comment's
// subject. An empty remaining list writes a zero score.
func (s *Service) recompute(ctx context.Context, comment model.Comment) (float64, error) {
	var (
		remaining []model.Comment
		err       error
	)
	switch {
	case comment.EstateID != "":
		remaining, err = s.comments.ByEstate(ctx, comment.EstateID)
	case comment.ProfileID != "":
		remaining, err = s.comments.ByProfile(ctx, comment.ProfileID)
	default:
		return 0, fmt.Errorf("comment %s has no subject", comment.ID)
	}
	if err != nil {
		return 0, fmt.Errorf("load subject comments: %w", err)
	}

	score := Average(remaining)

	if comment.EstateID != "" {
		err = s.scores.UpdateEstateScore(ctx, comment.EstateID, score)
	} else {
		err = s.scores.UpdateUserScore(ctx, comment.ProfileID, score)
	}
	if err != nil {
		return 0, fmt.Errorf("write back score: %w", err)
	}

	s.log.Debug("subject score recomputed",
		"estateId", comment.EstateID, "profileId", comment.ProfileID,
		"comments", len(remaining), "score", score)
	return score, nil
}

func validateSubject(comment model.Comment) error {
	if comment.EstateID == "" && comment.ProfileID == "" {
		return fmt.Errorf("comment needs an estateId or profileId")
	}
	if comment.EstateID != "" && comment.ProfileID != "" {
		return fmt.Errorf("estateId and profileId are mutually exclusive")
	}
	if comment.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
