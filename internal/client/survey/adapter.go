// Package surveyclient talks to the survey service.
package surveyclient

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
	return &Adapter{rpc: rpc.New("survey", baseURL, httpClient)}
}

// GetSingleSurvey resolves one survey's question, options and aggregate
// answer counts.
func (a *Adapter) GetSingleSurvey(ctx context.Context, surveyID string) (*models.SurveyDetail, error) {
	var survey models.SurveyDetail
	if err := a.rpc.Get(ctx, "/v1/surveys/"+url.PathEscape(surveyID), nil, &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}

// DidUserAnswered bulk-checks whether the user already answered each survey.
func (a *Adapter) DidUserAnswered(ctx context.Context, uid string, surveyIDs []string) ([]dto.AnsweredSurvey, error) {
	req := answeredCheckRequest{UserID: uid, SurveyIDs: surveyIDs}
	var resp answeredCheckResponse
	if err := a.rpc.Post(ctx, "/v1/surveys/answered-check", req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SubmitAnswer records the user's answer. The idempotency key guards against
// duplicate submissions on retried requests.
func (a *Adapter) SubmitAnswer(ctx context.Context, uid, surveyID, optionID, idempotencyKey string) error {
	req := submitAnswerRequest{
		UserID:         uid,
		OptionID:       optionID,
		IdempotencyKey: idempotencyKey,
	}
	return a.rpc.Post(ctx, "/v1/surveys/"+url.PathEscape(surveyID)+"/answers", req, nil)
}

type answeredCheckRequest struct {
	UserID    string   `json:"user_id"`
	SurveyIDs []string `json:"survey_ids"`
}

type answeredCheckResponse struct {
	Results []dto.AnsweredSurvey `json:"results"`
}

type submitAnswerRequest struct {
	UserID         string `json:"user_id"`
	OptionID       string `json:"option_id"`
	IdempotencyKey string `json:"idempotency_key"`
}
