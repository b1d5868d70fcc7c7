package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"github.com/you-rent/api/pkg/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// EstateRepository handles Firestore read/write for estates.
type EstateRepository struct {
	client *firestore.Client
}

func NewEstateRepository(client *firestore.Client) *EstateRepository {
	return &EstateRepository{client: client}
}

// FetchAll loads the full estate collection into memory.
func (r *EstateRepository) FetchAll(ctx context.Context) ([]model.Estate, error) {
	iter := r.client.Collection("estates").Documents(ctx)
	var result []model.Estate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate estates: %w", err)
		}
		var e model.Estate
		if err := doc.DataTo(&e); err != nil {
			return nil, fmt.Errorf("decode estate %s: %w", doc.Ref.ID, err)
		}
		e.ID = doc.Ref.ID
		result = append(result, e)
	}
	return result, nil
}

func (r *EstateRepository) GetByID(ctx context.Context, id string) (model.Estate, error) {
	snap, err := r.client.Collection("estates").Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.Estate{}, ErrNotFound
	}
	if err != nil {
		return model.Estate{}, fmt.Errorf("get estate %s: %w", id, err)
	}
	var e model.Estate
	if err := snap.DataTo(&e); err != nil {
		return model.Estate{}, fmt.Errorf("decode estate %s: %w", id, err)
	}
	e.ID = snap.Ref.ID
	return e, nil
}

func (r *EstateRepository) ByUser(ctx context.Context, userID string) ([]model.Estate, error) {
	iter := r.client.Collection("estates").Where("userId", "==", userID).Documents(ctx)
	var result []model.Estate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate estates of %s: %w", userID, err)
		}
		var e model.Estate
		if err := doc.DataTo(&e); err != nil {
			return nil, fmt.Errorf("decode estate %s: %w", doc.Ref.ID, err)
		}
		e.ID = doc.Ref.ID
		result = append(result, e)
	}
	return result, nil
}

// Add creates a new estate document. Unset optional fields are omitted on
// write; the generated document id is returned on the estate.
func (r *EstateRepository) Add(ctx context.Context, e model.Estate) (model.Estate, error) {
	e.ID = ""
	setGeohash(&e)
	ref, _, err := r.client.Collection("estates").Add(ctx, e)
	if err != nil {
		return model.Estate{}, fmt.Errorf("add estate: %w", err)
	}
	e.ID = ref.ID
	return e, nil
}

// Update replaces the estate document. Optional fields the caller left
// unset are omitted from the write and thereby deleted, keeping the
// omit-falsy storage convention on edits.
func (r *EstateRepository) Update(ctx context.Context, id string, e model.Estate) error {
	e.ID = ""
	setGeohash(&e)
	ref := r.client.Collection("estates").Doc(id)
	if _, err := ref.Set(ctx, e); err != nil {
		return fmt.Errorf("update estate %s: %w", id, err)
	}
	return nil
}

// AddPicture appends a picture URL to the estate's picture list.
func (r *EstateRepository) AddPicture(ctx context.Context, id, url string) error {
	ref := r.client.Collection("estates").Doc(id)
	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "pictureUrls", Value: firestore.ArrayUnion(url)},
	}); err != nil {
		return fmt.Errorf("append picture to estate %s: %w", id, err)
	}
	return nil
}

// RemovePicture removes a picture URL from the estate's picture list.
func (r *EstateRepository) RemovePicture(ctx context.Context, id, url string) error {
	ref := r.client.Collection("estates").Doc(id)
	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "pictureUrls", Value: firestore.ArrayRemove(url)},
	}); err != nil {
		return fmt.Errorf("remove picture from estate %s: %w", id, err)
	}
	return nil
}

// UpdateEstateScore writes back a recomputed aggregate score.
func (r *EstateRepository) UpdateEstateScore(ctx context.Context, id string, score float64) error {
	ref := r.client.Collection("estates").Doc(id)
	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "score", Value: score},
	}); err != nil {
		return fmt.Errorf("update score of estate %s: %w", id, err)
	}
	return nil
}

// Deactivate soft-deletes the estate. There is no hard delete.
func (r *EstateRepository) Deactivate(ctx context.Context, id string) error {
	ref := r.client.Collection("estates").Doc(id)
	if _, err := ref.Update(ctx, []firestore.Update{
		{Path: "isActive", Value: false},
	}); err != nil {
		return fmt.Errorf("deactivate estate %s: %w", id, err)
	}
	return nil
}

func setGeohash(e *model.Estate) {
	if e.Coordinates == nil {
		e.Geohash = ""
		return
	}
	e.Geohash = geohash.Encode(e.Coordinates.Latitude, e.Coordinates.Longitude)
}
