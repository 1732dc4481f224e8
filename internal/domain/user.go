package domain

// User is an author identity referenced by articles and comments.
// Users are seeded outside this API's write surface.
type User struct {
	Username string `json:"username"`
}
