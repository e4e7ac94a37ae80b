package entities

// Identity is the authenticated user as reported by the identity provider.
type Identity struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
