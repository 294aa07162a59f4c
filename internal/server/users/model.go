package users

import "time"

type User struct {
	ID                   string
	Email                string
	PasswordHash         []byte
	DisplayName          string
	Currency             string
	Locale               string
	Country              string
	NotificationsEnabled bool
	DefaultWalletID      string
	ExternalProvider     bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
