package models

// Component types a widget slot can reference. Anything else is reserved and
// skipped during composition.
const (
	ComponentTypeSurvey        = "SURVEY"
	ComponentTypeProductSlider = "PRODUCT_SLIDER"
)

// Widget is the ordered container of content components for one feed screen.
// The composer fetches widgets from the widget service and never mutates them.
type Widget struct {
	WidgetID   string      `json:"widget_id"`
	Components []Component `json:"component"`
}

// Component is a single slot inside a widget. Order is the sole ordering key
// for the final feed; ties keep insertion order.
type Component struct {
	ComponentType    string `json:"component_type"`
	ReferenceModelID string `json:"reference_model_id"`
	Order            int    `json:"order"`
}
