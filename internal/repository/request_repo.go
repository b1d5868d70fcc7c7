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

// RequestRepository handles rental requests and their chat messages.
// Messages live in a sub-collection under each request document.
type RequestRepository struct {
	client *firestore.Client
}

func NewRequestRepository(client *firestore.Client) *RequestRepository {
	return &RequestRepository{client: client}
}

func (r *RequestRepository) Get(ctx context.Context, id string) (model.Request, error) {
	snap, err := r.client.Collection("requests").Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.Request{}, ErrNotFound
	}
	if err != nil {
		return model.Request{}, fmt.Errorf("get request %s: %w", id, err)
	}
	var req model.Request
	if err := snap.DataTo(&req); err != nil {
		return model.Request{}, fmt.Errorf("decode request %s: %w", id, err)
	}
	req.ID = snap.Ref.ID
	return req, nil
}

// BySender returns requests the user has sent.
func (r *RequestRepository) BySender(ctx context.Context, senderID string) ([]model.Request, error) {
	return r.byField(ctx, "senderId", senderID)
}

// ByReceiver returns requests addressed to the user.
func (r *RequestRepository) ByReceiver(ctx context.Context, receiverID string) ([]model.Request, error) {
	return r.byField(ctx, "receiverId", receiverID)
}

func (r *RequestRepository) byField(ctx context.Context, field, id string) ([]model.Request, error) {
	iter := r.client.Collection("requests").Where(field, "==", id).Documents(ctx)
	var result []model.Request
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate requests by %s %s: %w", field, id, err)
		}
		var req model.Request
		if err := doc.DataTo(&req); err != nil {
			return nil, fmt.Errorf("decode request %s: %w", doc.Ref.ID, err)
		}
		req.ID = doc.Ref.ID
		result = append(result, req)
	}
	return result, nil
}

func (r *RequestRepository) Add(ctx context.Context, req model.Request) (model.Request, error) {
	req.ID = ""
	ref, _, err := r.client.Collection("requests").Add(ctx, req)
	if err != nil {
		return model.Request{}, fmt.Errorf("add request: %w", err)
	}
	req.ID = ref.ID
	return req, nil
}

// Update replaces the request document (accept/decline, pending flag).
func (r *RequestRepository) Update(ctx context.Context, id string, req model.Request) error {
	req.ID = ""
	if _, err := r.client.Collection("requests").Doc(id).Set(ctx, req); err != nil {
		return fmt.Errorf("update request %s: %w", id, err)
	}
	return nil
}

// Messages returns the request's chat history in send order.
func (r *RequestRepository) Messages(ctx context.Context, requestID string) ([]model.RequestMessage, error) {
	iter := r.client.Collection("requests").Doc(requestID).
		Collection("messages").OrderBy("sendDate", firestore.Asc).Documents(ctx)
	var result []model.RequestMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate messages of request %s: %w", requestID, err)
		}
		var m model.RequestMessage
		if err := doc.DataTo(&m); err != nil {
			return nil, fmt.Errorf("decode message %s: %w", doc.Ref.ID, err)
		}
		m.ID = doc.Ref.ID
		result = append(result, m)
	}
	return result, nil
}

// AddMessage appends a chat message and denormalizes it onto the parent
// request's lastMessage for list views.
func (r *RequestRepository) AddMessage(ctx context.Context, requestID string, m model.RequestMessage) (model.RequestMessage, error) {
	m.ID = ""
	reqRef := r.client.Collection("requests").Doc(requestID)
	ref, _, err := reqRef.Collection("messages").Add(ctx, m)
	if err != nil {
		return model.RequestMessage{}, fmt.Errorf("add message to request %s: %w", requestID, err)
	}
	m.ID = ref.ID

	if _, err := reqRef.Update(ctx, []firestore.Update{
		{Path: "lastMessage", Value: m.Text},
	}); err != nil {
		return model.RequestMessage{}, fmt.Errorf("update last message of request %s: %w", requestID, err)
	}
	return m, nil
}
