package entity

import "github.com/golang-jwt/jwt/v5"

type Role string

const RoleAdmin Role = "admin"

// Claims are the parsed contents of an admin access token.
type Claims struct {
	Subject string
	Role    Role
	jwt.RegisteredClaims
}
