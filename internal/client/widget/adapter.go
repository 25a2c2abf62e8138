// Package widgetclient talks to the widget service, which owns layout
// definitions (widget + banners) and product-slider definitions.
package widgetclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GregMSThompson/retail-backend/internal/client/rpc"
	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/models"
)

type Adapter struct {
	rpc *rpc.Client
}

func NewAdapter(baseURL string, httpClient *http.Client) *Adapter {
	return &Adapter{rpc: rpc.New("widget", baseURL, httpClient)}
}

// GetActiveLayout fetches the currently active layout.
func (a *Adapter) GetActiveLayout(ctx context.Context) (*dto.LayoutData, error) {
	var data dto.LayoutData
	if err := a.rpc.Get(ctx, "/v1/layouts/active", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetLayoutByID fetches a specific layout by widget id.
func (a *Adapter) GetLayoutByID(ctx context.Context, widgetID string) (*dto.LayoutData, error) {
	var data dto.LayoutData
	if err := a.rpc.Get(ctx, "/v1/layouts/"+url.PathEscape(widgetID), nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetProductSlider resolves a product-slider definition by reference id.
func (a *Adapter) GetProductSlider(ctx context.Context, sliderID string) (*models.ProductSlider, error) {
	var slider models.ProductSlider
	if err := a.rpc.Get(ctx, "/v1/product-sliders/"+url.PathEscape(sliderID), nil, &slider); err != nil {
		return nil, err
	}
	return &slider, nil
}
