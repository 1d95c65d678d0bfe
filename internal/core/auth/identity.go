package auth

// Identity is the resolved caller attached to an authenticated request.
// ID is the decimal string form of the user's database id; keeping it a
// string lets the ownership check compare identifiers without caring
// how the credential encoded them.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// IsZero reports whether no identity was resolved for the request.
func (i Identity) IsZero() bool {
	return i.ID == ""
}
