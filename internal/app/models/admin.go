package models

// Admin represents a row in the admins table.
type Admin struct {
	AdminID  int64  `json:"admin_id" db:"admin_id"`
	Name     string `json:"name" db:"name"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
