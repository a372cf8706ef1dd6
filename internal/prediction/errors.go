package prediction

import "fmt"

// InsufficientDataError reports that a user's history is too small to
// support any prediction tier. The user recovers by logging more fixes;
// the request is not retried.
type InsufficientDataError struct {
	DataPoints int
	Minimum    int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("not enough location data: have %d samples, need at least %d", e.DataPoints, e.Minimum)
}
