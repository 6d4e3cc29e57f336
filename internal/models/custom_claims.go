package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in bearer tokens accepted by the API
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email,omitempty"`
}
