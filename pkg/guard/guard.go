package guard

import "playtube.com/pkg/errno"

// Mutation is the ownership check applied before every mutating operation.
// The caller must have already established that the record exists, so a
// failure here is always a permission problem, never a missing record.
func Mutation(ownerId, viewerId int64) error {
	if viewerId == 0 {
		return errno.TokenInvailedErr
	}
	if ownerId != viewerId {
		return errno.ForbiddenErr
	}
	return nil
}

// IsOwner reports whether the viewer owns the record; anonymous viewers own
// nothing.
func IsOwner(ownerId, viewerId int64) bool {
	return viewerId != 0 && ownerId == viewerId
}
