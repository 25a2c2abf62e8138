package dto

// SampleStatus is one row of the sample service's bulk status check.
type SampleStatus struct {
	SampleID string `json:"sample_id"`
	Status   string `json:"status"`
}
