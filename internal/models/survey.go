package models

// SurveyDetail is the survey service's read model for one survey.
type SurveyDetail struct {
	ID            string         `json:"id"`
	Question      string         `json:"question"`
	Options       []SurveyOption `json:"option"`
	TotalAnswered int            `json:"totalAnswered"`
}

type SurveyOption struct {
	ID     string `json:"id"`
	Option string `json:"option"`
	Count  int    `json:"count"`
}
