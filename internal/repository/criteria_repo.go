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

// CriteriaRepository manages saved search criteria, stored as a
// sub-collection under each user document.
type CriteriaRepository struct {
	client *firestore.Client
}

func NewCriteriaRepository(client *firestore.Client) *CriteriaRepository {
	return &CriteriaRepository{client: client}
}

func (r *CriteriaRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("criterias")
}

func (r *CriteriaRepository) ByUser(ctx context.Context, userID string) ([]model.SearchCriteria, error) {
	iter := r.collection(userID).Documents(ctx)
	var result []model.SearchCriteria
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate criterias of %s: %w", userID, err)
		}
		var c model.SearchCriteria
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode criteria %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		result = append(result, c)
	}
	return result, nil
}

func (r *CriteriaRepository) Get(ctx context.Context, userID, criteriaID string) (model.SearchCriteria, error) {
	snap, err := r.collection(userID).Doc(criteriaID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.SearchCriteria{}, ErrNotFound
	}
	if err != nil {
		return model.SearchCriteria{}, fmt.Errorf("get criteria %s: %w", criteriaID, err)
	}
	var c model.SearchCriteria
	if err := snap.DataTo(&c); err != nil {
		return model.SearchCriteria{}, fmt.Errorf("decode criteria %s: %w", criteriaID, err)
	}
	c.ID = snap.Ref.ID
	return c, nil
}

func (r *CriteriaRepository) Add(ctx context.Context, userID string, c model.SearchCriteria) (model.SearchCriteria, error) {
	c.ID = ""
	ref, _, err := r.collection(userID).Add(ctx, c)
	if err != nil {
		return model.SearchCriteria{}, fmt.Errorf("add criteria for %s: %w", userID, err)
	}
	c.ID = ref.ID
	return c, nil
}

func (r *CriteriaRepository) Update(ctx context.Context, userID, criteriaID string, c model.SearchCriteria) error {
	c.ID = ""
	if _, err := r.collection(userID).Doc(criteriaID).Set(ctx, c); err != nil {
		return fmt.Errorf("update criteria %s: %w", criteriaID, err)
	}
	return nil
}

func (r *CriteriaRepository) Delete(ctx context.Context, userID, criteriaID string) error {
	if _, err := r.collection(userID).Doc(criteriaID).Delete(ctx); err != nil {
		return fmt.Errorf("delete criteria %s: %w", criteriaID, err)
	}
	return nil
}
