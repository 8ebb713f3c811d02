// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is the bearer token persisted in the local client store.
// The token is opaque to the client; it is attached to HTTP requests and to
// the push channel URL verbatim.
type Credential struct {
	Name      string
	Token     string
	UpdatedAt time.Time
}

// CredentialSource tells where a resolved credential came from.
type CredentialSource string

const (
	CredentialSourceNone    CredentialSource = "none"
	CredentialSourceStore   CredentialSource = "store"
	CredentialSourceDefault CredentialSource = "default"
)

// CredentialInfo is a best-effort, unverified description of a token, used
// for display only. Fields are empty when the token is not a JWT.
type CredentialInfo struct {
	Source    CredentialSource
	Subject   string
	Issuer    string
	ExpiresAt *time.Time
	Expired   bool
}
