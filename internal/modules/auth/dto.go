package auth

import "time"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterAdminRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	SecretKey string `json:"secretKey" binding:"required"`
}

type AddAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminInfo is the listing shape: no password hash, no creation time.
type AdminInfo struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	IsMaster  bool       `json:"is_master"`
	LastLogin *time.Time `json:"last_login"`
}

// SessionUser is the decoded identity returned by the verify endpoint.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsMaster bool   `json:"isMaster"`
}
