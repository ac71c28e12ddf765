// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// ErrTokenIssuanceFailed matches every error returned by
// [TokenAdapter.IssueAccessToken].
var ErrTokenIssuanceFailed = errors.New("token issuance failed")

// Causes carried by a [TokenIssuanceError].
var (
	ErrEmptyBaseURL         = errors.New("empty upstream api url")
	ErrInvalidRequestKind   = errors.New("invalid token request kind")
	ErrBadRequest           = errors.New("upstream rejected the request")
	ErrUnauthorized         = errors.New("upstream rejected the secret key")
	ErrForbidden            = errors.New("upstream forbids token issuance")
	ErrNotFound             = errors.New("upstream endpoint not found")
	ErrUpstream             = errors.New("upstream error")
	ErrMalformedTokenResult = errors.New("malformed access token response")
)

// TokenIssuanceError describes a failed access-token exchange.
type TokenIssuanceError struct {
	// URL is the endpoint the request was sent to.
	URL string

	// Cause is the underlying transport, status or decoding error.
	Cause error
}

func (e *TokenIssuanceError) Error() string {
	return fmt.Sprintf("could not fetch access token from `%s`: %v", e.URL, e.Cause)
}

// Unwrap exposes both [ErrTokenIssuanceFailed] and the cause to errors.Is
// and errors.As.
func (e *TokenIssuanceError) Unwrap() []error {
	return []error{ErrTokenIssuanceFailed, e.Cause}
}
