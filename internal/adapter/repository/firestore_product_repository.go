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
	"gamezone/pkg/logger"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

// FetchAll bulk-loads the products collection. Documents are normalized
// on the way in; a malformed document degrades to defaults instead of
// failing the load.
func (r *firestoreProductRepository) FetchAll(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection("products").Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		products = append(products, entity.NormalizeProduct(doc.Ref.ID, doc.Data()))
	}

	logger.Debug("Fetched %d product documents", len(products))
	return products, nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	return entity.NormalizeProduct(doc.Ref.ID, doc.Data()), nil
}
