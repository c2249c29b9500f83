package model

import "time"

// User представляет зарегистрированного пользователя приложения.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// RegisterRequest — тело запроса регистрации нового пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest — тело запроса авторизации.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
