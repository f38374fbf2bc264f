package services

import "fmt"

// Authorize is the ownership guard applied before every mutation of an
// owned resource. The same check covers update and delete; a denial is
// distinguishable from not-found and from validation failures.
func Authorize(resourceOwnerID, callerID string) error {
	if resourceOwnerID != callerID {
		return fmt.Errorf("%w: caller does not own resource", ErrForbidden)
	}
	return nil
}
