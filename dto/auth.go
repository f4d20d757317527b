package dto

import (
	"time"
)

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type GoogleUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verifiedEmail"`
}

// TokenResponse is the login payload: the opaque bearer token plus its expiry.
type TokenResponse struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}

// RegisterResponse is the registration payload: the created user and a token.
type RegisterResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
