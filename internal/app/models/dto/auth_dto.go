package dto

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// UserSummary is the minimal identity returned on login; it deliberately
// carries no credential fields.
type UserSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	UserType string `json:"userType"`
}

// LoginResponse is the success body of POST /api/auth/login
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}
