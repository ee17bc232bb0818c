package usecase

import (
	"context"
	"sync"

	"gamezone/internal/domain/entity"
	"gamezone/internal/domain/repository"
	"gamezone/pkg/errors"
	"gamezone/pkg/logger"
)

// CatalogUseCase holds the product catalog in memory. Products are bulk
// loaded once at startup and treated as read-only; filtering runs over
// the cached slice on every request, which is cheap at this data scale.
type CatalogUseCase struct {
	productRepo repository.ProductRepository

	mu       sync.RWMutex
	products []*entity.Product
	byID     map[string]*entity.Product
}

func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		byID:        make(map[string]*entity.Product),
	}
}

// Load fetches the full catalog from the store. An unreachable store
// leaves the catalog empty rather than failing the caller; browsing an
// empty catalog is a supported state.
func (uc *CatalogUseCase) Load(ctx context.Context) error {
	products, err := uc.productRepo.FetchAll(ctx)
	if err != nil {
		logger.Error("Failed to load product catalog: %v", err)
		products = nil
	}

	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	uc.mu.Lock()
	uc.products = products
	uc.byID = byID
	uc.mu.Unlock()

	logger.Info("Catalog loaded with %d products", len(products))
	return err
}

// List returns the products matching the criteria, in catalog order.
func (uc *CatalogUseCase) List(criteria entity.FilterCriteria) []*entity.Product {
	uc.mu.RLock()
	products := uc.products
	uc.mu.RUnlock()

	return entity.FilterProducts(products, criteria)
}

func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	uc.mu.RLock()
	p, ok := uc.byID[id]
	uc.mu.RUnlock()

	if ok {
		return p, nil
	}

	// Cache miss: the document may have been created after startup.
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}
	return p, nil
}

func (uc *CatalogUseCase) Size() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.products)
}
