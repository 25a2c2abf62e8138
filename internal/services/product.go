package services

import (
	"context"

	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/errs"
)

const (
	defaultProductLimit = 20
	maxProductLimit     = 100
)

// productPSCatalog keeps the service decoupled from the catalog adapter.
type productPSCatalog interface {
	AllProducts(ctx context.Context, query dto.ProductQuery) (*dto.ProductPage, error)
}

type productService struct {
	catalog productPSCatalog
}

func NewProductService(catalog productPSCatalog) *productService {
	return &productService{catalog: catalog}
}

// ListProducts forwards a catalog query after normalizing paging and sort
// defaults.
func (s *productService) ListProducts(ctx context.Context, query dto.ProductQuery) (*dto.ProductPage, error) {
	if query.Limit < 0 {
		return nil, errs.NewValidationError("limit must not be negative")
	}
	if query.Limit == 0 {
		query.Limit = defaultProductLimit
	}
	if query.Limit > maxProductLimit {
		query.Limit = maxProductLimit
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.SortByField == "" {
		query.SortByField = "created_at"
	}
	if query.SortByOrder == "" {
		query.SortByOrder = "desc"
	}
	return s.catalog.AllProducts(ctx, query)
}
