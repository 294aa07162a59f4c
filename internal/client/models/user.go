// Package models defines the client-side domain entities.
package models

import "time"

// Preferences is the nested per-user preferences object.
type Preferences struct {
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	DefaultWalletID      string `json:"defaultWalletId"`
}

// UserProfile is the domain user entity. ID is the externally issued user
// identifier and is immutable once set; only profile fields and UpdatedAt
// are ever mutated.
type UserProfile struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName"`
	Country     string      `json:"country"`
	Currency    string      `json:"currency"`
	Locale      string      `json:"locale"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// RegistrationInput is what a new account is created from. The provider
// issues the ID and creates the default wallet.
type RegistrationInput struct {
	Email       string
	Password    string
	DisplayName string
	Country     string
	Currency    string
	Locale      string
}
