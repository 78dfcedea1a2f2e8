package usecase

const (
	// DefaultBatchSize is the number of transactions fetched per export page.
	DefaultBatchSize = 30000

	// SourceBooked and SourceClosed label the two paged export sources.
	SourceBooked = "booked"
	SourceClosed = "closed"
	// SourceActivity labels the pages of the plain transaction export.
	SourceActivity = "activity"

	// AllGeos names the accounting download when no geo is selected.
	AllGeos = "All"
)
