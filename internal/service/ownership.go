package service

import (
	"fmt"

	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

// requireOwner is the single ownership predicate for user-scoped resources.
// The stored owner id is compared to the authenticated user id by string
// equality; a mismatch denies access without revealing the resource contents.
func requireOwner(ownerID, userID, action string) error {
	if ownerID != userID {
		return apperrors.NewForbidden(fmt.Sprintf("you do not have permission to %s", action))
	}
	return nil
}
