package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/errs"
	"github.com/GregMSThompson/retail-backend/internal/middleware"
	"github.com/GregMSThompson/retail-backend/internal/models"
)

type stubSurveyService struct {
	resp *dto.SurveyResponse
	err  error

	submitErr    error
	lastUID      string
	lastSurveyID string
	lastReq      dto.SubmitAnswerRequest
}

func (s *stubSurveyService) GetSurvey(_ context.Context, uid, surveyID string) (*dto.SurveyResponse, error) {
	s.lastUID = uid
	s.lastSurveyID = surveyID
	return s.resp, s.err
}

func (s *stubSurveyService) SubmitAnswer(_ context.Context, uid, surveyID string, req dto.SubmitAnswerRequest) error {
	s.lastUID = uid
	s.lastSurveyID = surveyID
	s.lastReq = req
	return s.submitErr
}

func TestGetSurvey_WritesSuccess(t *testing.T) {
	svc := &stubSurveyService{resp: &dto.SurveyResponse{
		Survey:          &models.SurveyDetail{ID: "s1"},
		DidUserAnswered: true,
	}}
	rh := &stubResponseHandler{}
	h := NewSurveyHandlers(&Deps{ResponseHandler: rh, SurveySvc: svc})

	w, r := newRequest(http.MethodGet, "/surveys/s1")
	r = withChiParam(r, "surveyId", "s1")
	r = withAuth(r, middleware.Auth{Authenticated: true, UID: "uid1"})
	h.GetSurvey(w, r)

	if !rh.successCalled || rh.successStatus != http.StatusOK {
		t.Fatalf("expected 200 success, got %+v", rh)
	}
	if svc.lastUID != "uid1" || svc.lastSurveyID != "s1" {
		t.Errorf("expected uid1/s1, got %q/%q", svc.lastUID, svc.lastSurveyID)
	}
}

func TestGetSurvey_NotFoundHandled(t *testing.T) {
	svc := &stubSurveyService{err: errs.NewNotFoundError("Survey not found")}
	rh := &stubResponseHandler{}
	h := NewSurveyHandlers(&Deps{ResponseHandler: rh, SurveySvc: svc})

	w, r := newRequest(http.MethodGet, "/surveys/gone")
	r = withChiParam(r, "surveyId", "gone")
	h.GetSurvey(w, r)

	if !rh.handleCalled {
		t.Fatalf("expected error to be handled")
	}
	if _, ok := rh.handledErr.(*errs.NotFoundError); !ok {
		t.Errorf("expected NotFoundError, got %v", rh.handledErr)
	}
}

func TestSubmitAnswer_Created(t *testing.T) {
	svc := &stubSurveyService{}
	rh := &stubResponseHandler{}
	h := NewSurveyHandlers(&Deps{ResponseHandler: rh, SurveySvc: svc})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/surveys/s1/answers", strings.NewReader(`{"option_id":"o2"}`))
	r = withChiParam(r, "surveyId", "s1")
	r = withAuth(r, middleware.Auth{Authenticated: true, UID: "uid1"})
	h.SubmitAnswer(w, r)

	if !rh.successCalled || rh.successStatus != http.StatusCreated {
		t.Fatalf("expected 201 success, got %+v", rh)
	}
	if svc.lastReq.OptionID != "o2" {
		t.Errorf("expected option o2, got %q", svc.lastReq.OptionID)
	}
}

func TestSubmitAnswer_BadBodyHandled(t *testing.T) {
	svc := &stubSurveyService{}
	rh := &stubResponseHandler{}
	h := NewSurveyHandlers(&Deps{ResponseHandler: rh, SurveySvc: svc})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/surveys/s1/answers", strings.NewReader("not json"))
	r = withChiParam(r, "surveyId", "s1")
	h.SubmitAnswer(w, r)

	if rh.successCalled {
		t.Errorf("expected no success write for a bad body")
	}
	if !rh.handleCalled {
		t.Fatalf("expected decode error to be handled")
	}
}

func TestSubmitAnswer_ValidationErrorHandled(t *testing.T) {
	svc := &stubSurveyService{submitErr: errs.NewValidationError("option_id is required")}
	rh := &stubResponseHandler{}
	h := NewSurveyHandlers(&Deps{ResponseHandler: rh, SurveySvc: svc})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/surveys/s1/answers", strings.NewReader(`{}`))
	r = withChiParam(r, "surveyId", "s1")
	h.SubmitAnswer(w, r)

	if _, ok := rh.handledErr.(*errs.ValidationError); !ok {
		t.Errorf("expected ValidationError, got %v", rh.handledErr)
	}
}
