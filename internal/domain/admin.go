package domain

import "time"

// AdminUser is a backoffice account. The master flag marks the single
// account allowed to manage other admins; the password hash never leaves
// the server.
type AdminUser struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	IsMaster     bool       `json:"is_master"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
}
