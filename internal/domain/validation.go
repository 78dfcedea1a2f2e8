package domain

import "fmt"

// MaxStatementRows is the hard cap on rows returned by a JSON statement.
const MaxStatementRows = 5000

// ValidateLimit checks a statement row limit against maxRows. Zero means maxRows.
func ValidateLimit(limit, maxRows int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("limit must be non-negative, got %d", limit)
	}
	if limit == 0 || limit > maxRows {
		return maxRows, nil
	}
	return limit, nil
}

// ValidateBatchSize checks an export page size.
func ValidateBatchSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", size)
	}
	return nil
}
