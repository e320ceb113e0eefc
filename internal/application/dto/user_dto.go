package dto

import "time"

// RegisterRequest entrada de POST /auth/register. Role es opcional y por
// defecto queda en "staff".
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager staff"`
}

// LoginRequest entrada de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterResponse salida de POST /auth/register.
type RegisterResponse struct {
	Msg  string       `json:"msg"`
	User UserResponse `json:"user"`
}

// LoginResponse salida de POST /auth/login.
type LoginResponse struct {
	Msg   string       `json:"msg"`
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
