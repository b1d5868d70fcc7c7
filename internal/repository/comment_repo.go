package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/you-rent/api/pkg/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CommentRepository handles Firestore read/write for comments. It satisfies
// the rating service's comment store.
type CommentRepository struct {
	client *firestore.Client
}

func NewCommentRepository(client *firestore.Client) *CommentRepository {
	return &CommentRepository{client: client}
}

func (r *CommentRepository) Get(ctx context.Context, id string) (model.Comment, error) {
	snap, err := r.client.Collection("comments").Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.Comment{}, ErrNotFound
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("get comment %s: %w", id, err)
	}
	var c model.Comment
	if err := snap.DataTo(&c); err != nil {
		return model.Comment{}, fmt.Errorf("decode comment %s: %w", id, err)
	}
	c.ID = snap.Ref.ID
	return c, nil
}

// ByEstate returns all comments attached to an estate.
func (r *CommentRepository) ByEstate(ctx context.Context, estateID string) ([]model.Comment, error) {
	return r.bySubject(ctx, "estateId", estateID)
}

// ByProfile returns all comments attached to a user profile.
func (r *CommentRepository) ByProfile(ctx context.Context, profileID string) ([]model.Comment, error) {
	return r.bySubject(ctx, "profileId", profileID)
}

func (r *CommentRepository) bySubject(ctx context.Context, field, id string) ([]model.Comment, error) {
	iter := r.client.Collection("comments").Where(field, "==", id).Documents(ctx)
	var result []model.Comment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate comments of %s %s: %w", field, id, err)
		}
		var c model.Comment
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode comment %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		result = append(result, c)
	}
	return result, nil
}

func (r *CommentRepository) Add(ctx context.Context, c model.Comment) (model.Comment, error) {
	c.ID = ""
	ref, _, err := r.client.Collection("comments").Add(ctx, c)
	if err != nil {
		return model.Comment{}, fmt.Errorf("add comment: %w", err)
	}
	c.ID = ref.ID
	return c, nil
}

// UpdateMessage edits the message text only; the score is immutable.
func (r *CommentRepository) UpdateMessage(ctx context.Context, id, message string) error {
	ref := r.client.Collection("comments").Doc(id)
	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "message", Value: message},
	}); err != nil {
		return fmt.Errorf("update comment %s: %w", id, err)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection("comments").Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete comment %s: %w", id, err)
	}
	return nil
}
