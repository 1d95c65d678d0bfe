package posts

import (
	"strconv"
	"strings"

	"Quill/internal/core/auth"
)

// CanMutate reports whether identity may mutate or delete post.
// True only when the post has an owner and that owner is the caller.
// Both sides are normalized to trimmed decimal strings so it does not
// matter whether the credential carried the id as a number or a string.
// Reads are never gated; callers translate false into ErrNotOwner.
func CanMutate(identity auth.Identity, post *Post) bool {
	if post == nil || post.OwnerID == nil {
		return false
	}
	callerID := strings.TrimSpace(identity.ID)
	if callerID == "" {
		return false
	}
	return strconv.FormatInt(*post.OwnerID, 10) == callerID
}
