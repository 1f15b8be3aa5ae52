package domain

// User is the in-memory record of a signed-in customer. Sessions are never
// persisted to the store; a user value lives only as long as its token.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	IsAdmin   bool   `json:"isAdmin,omitempty"`
}
