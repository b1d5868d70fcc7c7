package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/you-rent/api/pkg/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserRepository handles Firestore read/write for user profiles. Documents
// are keyed by the auth user id rather than generated ids.
type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	snap, err := r.client.Collection("users").Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	var u model.User
	if err := snap.DataTo(&u); err != nil {
		return model.User{}, fmt.Errorf("decode user %s: %w", id, err)
	}
	u.ID = snap.Ref.ID
	return u, nil
}

// Set creates or replaces the profile document under the given user id.
func (r *UserRepository) Set(ctx context.Context, id string, u model.User) error {
	u.ID = ""
	if _, err := r.client.Collection("users").Doc(id).Set(ctx, u); err != nil {
		return fmt.Errorf("set user %s: %w", id, err)
	}
	return nil
}

// UpdateUserScore writes back a recomputed aggregate profile score.
func (r *UserRepository) UpdateUserScore(ctx context.Context, id string, score float64) error {
	ref := r.client.Collection("users").Doc(id)
	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "score", Value: score},
	}); err != nil {
		return fmt.Errorf("update score of user %s: %w", id, err)
	}
	return nil
}
