package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/errs"
	"github.com/GregMSThompson/retail-backend/internal/response"
	"github.com/GregMSThompson/retail-backend/pkg/helpers"
)

type productService interface {
	ListProducts(ctx context.Context, query dto.ProductQuery) (*dto.ProductPage, error)
}

type productHandlers struct {
	ResponseHandler response.ResponseHandler
	ProductSvc      productService
}

func NewProductHandlers(deps *Deps) *productHandlers {
	return &productHandlers{
		ResponseHandler: deps.ResponseHandler,
		ProductSvc:      deps.ProductSvc,
	}
}

func (h *productHandlers) ProductRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListProducts)
	return r
}

func (h *productHandlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	query, err := parseProductQuery(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	page, err := h.ProductSvc.ListProducts(r.Context(), query)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, page)
}

func parseProductQuery(r *http.Request) (dto.ProductQuery, error) {
	q := r.URL.Query()
	query := dto.ProductQuery{
		BrandIDs:    splitIDs(q.Get("brand_ids")),
		RetailerIDs: splitIDs(q.Get("retailer_ids")),
		CategoryIDs: splitIDs(q.Get("category_ids")),
		SortByField: q.Get("sort_by_field"),
		SortByOrder: q.Get("sort_by_order"),
	}
	if promo := q.Get("promotion_type"); promo != "" {
		query.PromotionType = helpers.Ptr(promo)
	}

	var err error
	if query.Limit, err = parseIntParam(q.Get("limit"), "limit"); err != nil {
		return query, err
	}
	if query.Page, err = parseIntParam(q.Get("page"), "page"); err != nil {
		return query, err
	}
	return query, nil
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func parseIntParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError(name + " must be an integer")
	}
	return val, nil
}
