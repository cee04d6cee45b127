// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account implements user registration, login, and opaque-token
resolution for the authentication gate.

An account carries a single access token, minted at registration and stable
for the account's lifetime. Login never rotates it; it simply re-reveals the
same credential after a password check.
*/
package account

import "time"

// User is the persisted account record.
type User struct {
	ID string `json:"id"`

	// Username is the unique display handle, chosen at registration.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the plaintext password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// AccessToken is the opaque bearer credential. Never serialized on the
	// entity itself; it is revealed only through [Credentials].
	AccessToken string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the response shape for register and login. It is the only
// place the access token crosses the wire.
type Credentials struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}

// Credentials projects the response shape from a full account record.
func (user *User) Credentials() Credentials {
	return Credentials{
		ID:          user.ID,
		Username:    user.Username,
		AccessToken: user.AccessToken,
	}
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
)
