// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// TokenRequestKind selects the shape of the access-token request sent to the
// upstream API. The zero value is not a valid kind.
type TokenRequestKind int

const (
	// OneTimePassword requests a one-time token scoped to SDK initialisation.
	OneTimePassword TokenRequestKind = iota + 1

	// LimitedScope requests a limited-scope token for the web SDK.
	LimitedScope
)

// String returns the upstream "type" value of the kind.
func (k TokenRequestKind) String() string {
	switch k {
	case OneTimePassword:
		return "one_time_password"
	case LimitedScope:
		return "limited_scope"
	default:
		return fmt.Sprintf("TokenRequestKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k TokenRequestKind) Valid() bool {
	return k == OneTimePassword || k == LimitedScope
}

// Request returns the JSON body sent to POST /access-tokens for this kind.
func (k TokenRequestKind) Request() AccessTokenRequest {
	switch k {
	case OneTimePassword:
		return AccessTokenRequest{Type: "one_time_password", Scope: "init_sdk"}
	case LimitedScope:
		return AccessTokenRequest{Type: "limited_scope", Scope: "web-sdk"}
	default:
		return AccessTokenRequest{}
	}
}

// AccessTokenRequest is the body of POST /access-tokens.
type AccessTokenRequest struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

// AccessTokenResponse holds the short-lived token returned by the upstream
// API. It lives for a single request and is never persisted.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// UnmarshalJSON accepts both the snake_case "access_token" key and the
// camelCase "accessToken" key. When both are present the snake_case value
// wins.
func (r *AccessTokenResponse) UnmarshalJSON(b []byte) error {
	var raw struct {
		Snake *string `json:"access_token"`
		Camel *string `json:"accessToken"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch {
	case raw.Snake != nil:
		r.AccessToken = *raw.Snake
	case raw.Camel != nil:
		r.AccessToken = *raw.Camel
	default:
		r.AccessToken = ""
	}

	return nil
}
