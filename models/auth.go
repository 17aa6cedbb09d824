// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is sent to the sync provider on login. AuthHash is derived
// from the master key; the master password itself never leaves the agent.
type Credentials struct {
	Email    string `json:"email"`
	AuthHash string `json:"auth_hash"`
}

// AuthContext is the provider's answer to a successful login or token
// refresh. ProtectedKey and KDF are empty on refresh.
type AuthContext struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ProtectedKey string    `json:"protected_key,omitempty"`
	KDF          KDFParams `json:"kdf,omitempty"`
}
