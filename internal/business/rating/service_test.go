package rating

import (
	"context"
	"fmt"
	"testing"

	"github.com/you-rent/api/pkg/model"
)

type fakeCommentStore struct {
	comments map[string]model.Comment
	nextID   int
}

func newFakeCommentStore(existing ...model.Comment) *fakeCommentStore {
	s := &fakeCommentStore{comments: make(map[string]model.Comment)}
	for _, c := range existing {
		s.comments[c.ID] = c
	}
	return s
}

func (s *fakeCommentStore) Get(_ context.Context, id string) (model.Comment, error) {
	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, fmt.Errorf("comment %s not found", id)
	}
	return c, nil
}

func (s *fakeCommentStore) ByEstate(_ context.Context, estateID string) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range s.comments {
		if c.EstateID == estateID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCommentStore) ByProfile(_ context.Context, profileID string) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range s.comments {
		if c.ProfileID == profileID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCommentStore) Add(_ context.Context, c model.Comment) (model.Comment, error) {
	s.nextID++
	c.ID = fmt.Sprintf("c%d", s.nextID)
	s.comments[c.ID] = c
	return c, nil
}

func (s *fakeCommentStore) UpdateMessage(_ context.Context, id, message string) error {
	c, ok := s.comments[id]
	if !ok {
		return fmt.Errorf("comment %s not found", id)
	}
	c.Message = message
	s.comments[id] = c
	return nil
}

func (s *fakeCommentStore) Delete(_ context.Context, id string) error {
	delete(s.comments, id)
	return nil
}

type fakeScoreStore struct {
	estateScores map[string]float64
	userScores   map[string]float64
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{
		estateScores: make(map[string]float64),
		userScores:   make(map[string]float64),
	}
}

func (s *fakeScoreStore) UpdateEstateScore(_ context.Context, id string, score float64) error {
	s.estateScores[id] = score
	return nil
}

func (s *fakeScoreStore) UpdateUserScore(_ context.Context, id string, score float64) error {
	s.userScores[id] = score
	return nil
}

func TestAddCommentRecomputesEstateScore(t *testing.T) {
	comments := newFakeCommentStore(
		model.Comment{ID: "c0", EstateID: "e1", Message: "nice", Score: 4},
	)
	scores := newFakeScoreStore()
	svc := NewService(comments, scores, nil)

	_, score, err := svc.AddComment(context.Background(), model.Comment{
		EstateID: "e1", UserID: "u2", Message: "ok", Score: 2,
	})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if score != 3 {
		t.Errorf("score = %v, want 3", score)
	}
	if scores.estateScores["e1"] != 3 {
		t.Errorf("persisted estate score = %v, want 3", scores.estateScores["e1"])
	}
}

func TestAddCommentOwnerCommentLowersAverage(t *testing.T) {
	comments := newFakeCommentStore(
		model.Comment{ID: "c0", EstateID: "e1", Message: "great", Score: 4},
		model.Comment{ID: "c1", EstateID: "e1", Message: "fine", Score: 2},
	)
	scores := newFakeScoreStore()
	svc := NewService(comments, scores, nil)

	// Owner reply carries no score but still widens the divisor.
	_, score, err := svc.AddComment(context.Background(), model.Comment{
		EstateID: "e1", UserID: "owner", Message: "thanks",
	})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if score != 2 {
		t.Errorf("score = %v, want 2 ((4+2)/3)", score)
	}
}

func TestDeleteLastCommentZeroesScore(t *testing.T) {
	comments := newFakeCommentStore(
		model.Comment{ID: "c0", ProfileID: "u1", Message: "rude", Score: 1},
	)
	scores := newFakeScoreStore()
	svc := NewService(comments, scores, nil)

	score, err := svc.DeleteComment(context.Background(), "c0")
	if err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %v, want 0 after last comment removed", score)
	}
	if scores.userScores["u1"] != 0 {
		t.Errorf("persisted user score = %v, want 0", scores.userScores["u1"])
	}
}

func TestAddCommentValidation(t *testing.T) {
	svc := NewService(newFakeCommentStore(), newFakeScoreStore(), nil)
	ctx := context.Background()

	if _, _, err := svc.AddComment(ctx, model.Comment{Message: "m"}); err == nil {
		t.Error("expected error for missing subject")
	}
	if _, _, err := svc.AddComment(ctx, model.Comment{EstateID: "e", ProfileID: "p", Message: "m"}); err == nil {
		t.Error("expected error for both subjects set")
	}
	if _, _, err := svc.AddComment(ctx, model.Comment{EstateID: "e"}); err == nil {
		t.Error("expected error for empty message")
	}
	if _, _, err := svc.AddComment(ctx, model.Comment{EstateID: "e", Message: "m", Score: 6}); err == nil {
		t.Error("expected error for score out of range")
	}
}

func TestUpdateMessageDoesNotTouchScores(t *testing.T) {
	comments := newFakeCommentStore(
		model.Comment{ID: "c0", EstateID: "e1", Message: "old", Score: 4},
	)
	scores := newFakeScoreStore()
	svc := NewService(comments, scores, nil)

	if err := svc.UpdateMessage(context.Background(), "c0", "new"); err != nil {
		t.Fatalf("UpdateMessage: %v", err)
	}
	if len(scores.estateScores) != 0 {
		t.Errorf("message edit must not rewrite scores: %+v", scores.estateScores)
	}
	got, _ := comments.Get(context.Background(), "c0")
	if got.Message != "new" {
		t.Errorf("message = %q, want %q", got.Message, "new")
	}
	if got.Score != 4 {
		t.Errorf("score changed on message edit: %d", got.Score)
	}
}
