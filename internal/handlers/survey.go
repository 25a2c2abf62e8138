package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/middleware"
	"github.com/GregMSThompson/retail-backend/internal/response"
)

type surveyService interface {
	GetSurvey(ctx context.Context, uid, surveyID string) (*dto.SurveyResponse, error)
	SubmitAnswer(ctx context.Context, uid, surveyID string, req dto.SubmitAnswerRequest) error
}

type surveyHandlers struct {
	ResponseHandler response.ResponseHandler
	SurveySvc       surveyService
}

func NewSurveyHandlers(deps *Deps) *surveyHandlers {
	return &surveyHandlers{
		ResponseHandler: deps.ResponseHandler,
		SurveySvc:       deps.SurveySvc,
	}
}

func (h *surveyHandlers) SurveyRoutes(auth *middleware.Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAuth)
	r.Get("/{surveyId}", h.GetSurvey)
	r.Post("/{surveyId}/answers", h.SubmitAnswer)
	return r
}

func (h *surveyHandlers) GetSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	uid := middleware.UID(r.Context())
	resp, err := h.SurveySvc.GetSurvey(r.Context(), uid, surveyID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *surveyHandlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")
	var req dto.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.SurveySvc.SubmitAnswer(r.Context(), uid, surveyID, req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, nil)
}
