package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/middleware"
	"github.com/GregMSThompson/retail-backend/internal/response"
)

type layoutService interface {
	GetActiveLayout(ctx context.Context, auth middleware.Auth) (*dto.LayoutResponse, error)
	GetLayoutByID(ctx context.Context, auth middleware.Auth, widgetID string) (*dto.LayoutResponse, error)
}

type layoutHandlers struct {
	ResponseHandler response.ResponseHandler
	LayoutSvc       layoutService
}

func NewLayoutHandlers(deps *Deps) *layoutHandlers {
	return &layoutHandlers{
		ResponseHandler: deps.ResponseHandler,
		LayoutSvc:       deps.LayoutSvc,
	}
}

func (h *layoutHandlers) LayoutRoutes(auth *middleware.Middleware) chi.Router {
	r := chi.NewRouter()
	r.With(auth.OptionalAuth).Get("/active", h.GetActiveLayout) // must be before /{widgetId}
	r.With(auth.RequireAuth).Get("/{widgetId}", h.GetLayout)
	return r
}

func (h *layoutHandlers) GetActiveLayout(w http.ResponseWriter, r *http.Request) {
	auth := middleware.AuthFromContext(r.Context())
	resp, err := h.LayoutSvc.GetActiveLayout(r.Context(), auth)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *layoutHandlers) GetLayout(w http.ResponseWriter, r *http.Request) {
	widgetID := chi.URLParam(r, "widgetId")
	auth := middleware.AuthFromContext(r.Context())
	resp, err := h.LayoutSvc.GetLayoutByID(r.Context(), auth, widgetID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
