package models

import "time"

// LoginRequest вход администратора по общему паролю
type LoginRequest struct {
	Password string `json:"password"`
}

// TokenResponse выданный токен сессии
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
