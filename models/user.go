package models

// User is a registered user as listed by the upstream API. Read-only in this
// gateway.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
