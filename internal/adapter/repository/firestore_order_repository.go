package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gamezone/internal/domain/entity"
	"gamezone/internal/domain/repository"
	"gamezone/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").Query.
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}
