// Package catalogclient talks to the product catalogue service.
package catalogclient

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/retail-backend/internal/client/rpc"
	"github.com/GregMSThompson/retail-backend/internal/dto"
)

type Adapter struct {
	rpc *rpc.Client
}

func NewAdapter(baseURL string, httpClient *http.Client) *Adapter {
	return &Adapter{rpc: rpc.New("catalog", baseURL, httpClient)}
}

// AllProducts returns one page of products matching the query.
func (a *Adapter) AllProducts(ctx context.Context, query dto.ProductQuery) (*dto.ProductPage, error) {
	var page dto.ProductPage
	if err := a.rpc.Post(ctx, "/v1/products/search", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
