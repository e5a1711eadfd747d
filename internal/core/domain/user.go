package domain

// User is read-only reference data used for task assignment and display
// lookup. Users are never created or mutated through the API.
type User struct {
	ID   string
	Name string
}
