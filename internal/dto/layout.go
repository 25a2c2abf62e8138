package dto

import "github.com/GregMSThompson/retail-backend/internal/models"

// Widget types emitted in the composed feed.
const (
	WidgetTypeBanner        = "BANNER"
	WidgetTypeSurvey        = "SURVEY"
	WidgetTypeProductSlider = "PRODUCT_SLIDER"
)

// LayoutData is the widget service's result for a layout lookup: the widget
// definition plus its associated banner collection.
type LayoutData struct {
	Widget  models.Widget   `json:"widget"`
	Banners []models.Banner `json:"banner"`
}

// LayoutResponse is the composed feed returned to clients.
type LayoutResponse struct {
	WidgetID string        `json:"widget_id"`
	Widgets  []LayoutEntry `json:"widgets"`
	Message  string        `json:"message"`
}

// LayoutEntry is one transient entry of the composed feed. Every entry
// carries widget_metadata.widget_order so the final sort is total.
// WidgetFilter holds a *models.WidgetFilter for banners and the ProductQuery
// used for sliders (clients replay it for load-more).
type LayoutEntry struct {
	WidgetType     string         `json:"widget_type"`
	WidgetMetadata WidgetMetadata `json:"widget_metadata"`
	WidgetData     any            `json:"widget_data,omitempty"`
	WidgetFilter   any            `json:"widget_filter,omitempty"`
}

type WidgetMetadata struct {
	WidgetOrder     int    `json:"widget_order"`
	Name            string `json:"name,omitempty"`
	Image           string `json:"image,omitempty"`
	BrandLogo       string `json:"brand_logo,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// SurveyWidgetData is the survey payload inside a SURVEY feed entry.
type SurveyWidgetData struct {
	Question      string             `json:"question"`
	Options       []SurveyOptionItem `json:"options"`
	TotalAnswered int                `json:"total_answered"`
}

// SurveyOptionItem is a survey option reshaped for client rendering.
type SurveyOptionItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}
