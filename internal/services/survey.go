package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/errs"
	"github.com/GregMSThompson/retail-backend/internal/models"
	"github.com/GregMSThompson/retail-backend/pkg/logger"
)

// surveySSProvider is the survey service surface used by the forwarding
// endpoints.
type surveySSProvider interface {
	GetSingleSurvey(ctx context.Context, surveyID string) (*models.SurveyDetail, error)
	DidUserAnswered(ctx context.Context, uid string, surveyIDs []string) ([]dto.AnsweredSurvey, error)
	SubmitAnswer(ctx context.Context, uid, surveyID, optionID, idempotencyKey string) error
}

type surveyService struct {
	surveys surveySSProvider
	newKey  func() string
}

func NewSurveyService(surveys surveySSProvider) *surveyService {
	return &surveyService{
		surveys: surveys,
		newKey:  uuid.NewString,
	}
}

// GetSurvey returns the survey detail plus the caller's answered flag.
func (s *surveyService) GetSurvey(ctx context.Context, uid, surveyID string) (*dto.SurveyResponse, error) {
	survey, err := s.surveys.GetSingleSurvey(ctx, surveyID)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.NewNotFoundError("Survey not found")
		}
		return nil, err
	}
	if survey == nil {
		return nil, errs.NewNotFoundError("Survey not found")
	}

	rows, err := s.surveys.DidUserAnswered(ctx, uid, []string{surveyID})
	if err != nil {
		return nil, err
	}

	resp := &dto.SurveyResponse{Survey: survey}
	for _, row := range rows {
		if row.SurveyID == surveyID {
			resp.DidUserAnswered = row.DidUserAnswered
		}
	}
	return resp, nil
}

// SubmitAnswer forwards the caller's answer with a generated idempotency key.
func (s *surveyService) SubmitAnswer(ctx context.Context, uid, surveyID string, req dto.SubmitAnswerRequest) error {
	if req.OptionID == "" {
		return errs.NewValidationError("option_id is required")
	}
	if err := s.surveys.SubmitAnswer(ctx, uid, surveyID, req.OptionID, s.newKey()); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("survey answer submitted", "survey_id", surveyID)
	return nil
}
