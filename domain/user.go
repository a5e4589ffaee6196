package domain

// User is an author that posts can be attributed to. Read-only.
type User struct {
	ID   int
	Name string
}
