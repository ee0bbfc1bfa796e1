package facade

import (
	"context"
	"fmt"

	"stays/pkg/domain"
	"stays/pkg/serrors"
	"stays/pkg/storage"
)

// authorize enforces the owner-or-admin rule: the mutation is permitted iff
// the requester is the resource's owner/author or an admin. The admin flag is
// resolved from storage, not taken from the token, so a revoked admin loses
// the capability immediately. A requester id that does not resolve fails
// Forbidden as well, never NotFound.
func authorize(ctx context.Context, st storage.AllStorage, requesterID, ownerID domain.UserID) error {
	if requesterID == ownerID {
		return nil
	}

	requester, err := st.UserByID(ctx, requesterID)
	if err != nil {
		return fmt.Errorf("could not resolve requester: %w", err)
	}
	if requester == nil || !requester.IsAdmin {
		return serrors.With(serrors.ErrForbidden, "requester is not the owner or an admin")
	}

	return nil
}
