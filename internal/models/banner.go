package models

// Banner is a standalone promotional entry associated with a widget,
// optionally gated on sample ownership through its filter.
type Banner struct {
	BannerID     string        `json:"banner_id,omitempty"`
	Name         string        `json:"name,omitempty"`
	Image        string        `json:"image,omitempty"`
	Order        int           `json:"order"`
	WidgetFilter *WidgetFilter `json:"widget_filter,omitempty"`
}

// WidgetFilter gates a banner on a sample. SampleStatus is filled in per
// request during personalization and never stored.
type WidgetFilter struct {
	SampleID     string `json:"sample_id,omitempty"`
	SampleStatus string `json:"sample_status,omitempty"`
}
