package dto

import "github.com/GregMSThompson/retail-backend/internal/models"

// AnsweredSurvey is one row of the survey service's bulk answered check.
type AnsweredSurvey struct {
	SurveyID        string `json:"survey_id"`
	DidUserAnswered bool   `json:"did_user_answered"`
}

// SurveyResponse is the gateway's survey-detail payload: the survey plus the
// caller's answered flag.
type SurveyResponse struct {
	Survey          *models.SurveyDetail `json:"survey"`
	DidUserAnswered bool                 `json:"did_user_answered"`
}

// SubmitAnswerRequest is the body of a survey answer submission.
type SubmitAnswerRequest struct {
	OptionID string `json:"option_id"`
}
