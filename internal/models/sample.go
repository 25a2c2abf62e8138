package models

// Per-user sample statuses returned by the sample service. NOT_FOUND is a
// sentinel row, not an error: the sample id does not exist for this user.
const (
	SampleStatusNotFound  = "NOT_FOUND"
	SampleStatusAvailable = "AVAILABLE"
	SampleStatusOrdered   = "ORDERED"
	SampleStatusCompleted = "COMPLETED"
)
