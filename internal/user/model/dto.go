// Package model provides domain models and DTOs for the user module.
package model

// Member represents one entry of a group's member roster in API responses.
type Member struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
