// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the upstream payment API.
//
// The only exchange is the access-token issuance: the server-held secret key
// is sent as a bearer credential to POST {baseURL}/access-tokens and a
// short-lived token safe to hand to the browser comes back. Every failure is
// reported as a [TokenIssuanceError], which matches [ErrTokenIssuanceFailed]
// with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-web-sdk-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_adapter_mock.go -package=mock

// TokenAdapter exchanges a secret key for a short-lived access token.
type TokenAdapter interface {
	// IssueAccessToken performs exactly one POST to baseURL + "/access-tokens"
	// with the request body selected by kind. It never retries and never
	// caches the result.
	IssueAccessToken(ctx context.Context, baseURL, secretKey string, kind models.TokenRequestKind) (models.AccessTokenResponse, error)
}
