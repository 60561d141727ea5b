package itemset

import (
	"fmt"
)

// InvalidInput is returned for a minimum support that is not a positive
// integer and for transaction data that cannot be parsed.
type InvalidInput struct {
	Reason string
	Err    error
}

func (e *InvalidInput) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func (e *InvalidInput) Unwrap() error {
	return e.Err
}

// CheckSupport rejects minimum supports below 1.
func CheckSupport(support int) error {
	if support < 1 {
		return &InvalidInput{Reason: fmt.Sprintf("minimum support %d must be a positive integer", support)}
	}
	return nil
}
