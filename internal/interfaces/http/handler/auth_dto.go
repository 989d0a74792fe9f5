package handler

import (
	"github.com/barrovivo/backend/internal/domain/identity"
)

// LoginRequest is the login submission
type LoginRequest struct {
	Email    string `json:"correo" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public shape of an account
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"correo"`
	FirstName string `json:"nombres"`
	LastName  string `json:"apellidos"`
	IsStaff   bool   `json:"es_staff"`
}

// AuthResponse is a logged-in user with their bearer token
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

func toUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsStaff,
	}
}
