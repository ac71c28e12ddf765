package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-web-sdk-demo/internal/config"
	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
	"github.com/MKhiriev/go-web-sdk-demo/internal/metrics"
	"github.com/MKhiriev/go-web-sdk-demo/internal/utils"
	"github.com/MKhiriev/go-web-sdk-demo/models"
)

const accessTokensPath = "/access-tokens"

type httpTokenAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTokenAdapter constructs the REST implementation of [TokenAdapter].
//
// The base URL is not bound to the client: it is resolved from the checkout
// document on every request and passed to IssueAccessToken. A zero
// adapterCfg.RequestTimeout keeps the transport default.
func NewHTTPTokenAdapter(adapterCfg config.Adapter, logger *logger.Logger) TokenAdapter {
	client := utils.NewHTTPClient()
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpTokenAdapter{client: client, logger: logger}
}

// IssueAccessToken implements [TokenAdapter]. The endpoint is baseURL with
// "/access-tokens" appended verbatim.
func (h *httpTokenAdapter) IssueAccessToken(ctx context.Context, baseURL, secretKey string, kind models.TokenRequestKind) (models.AccessTokenResponse, error) {
	url := baseURL + accessTokensPath
	start := time.Now()

	result, err := h.issue(ctx, url, baseURL, secretKey, kind)
	metrics.ObserveTokenIssuance(kind.String(), err, time.Since(start))
	if err != nil {
		return models.AccessTokenResponse{}, &TokenIssuanceError{URL: url, Cause: err}
	}

	return result, nil
}

func (h *httpTokenAdapter) issue(ctx context.Context, url, baseURL, secretKey string, kind models.TokenRequestKind) (models.AccessTokenResponse, error) {
	if baseURL == "" {
		return models.AccessTokenResponse{}, ErrEmptyBaseURL
	}
	if !kind.Valid() {
		return models.AccessTokenResponse{}, fmt.Errorf("%w: %s", ErrInvalidRequestKind, kind)
	}

	h.logger.Debug().
		Str("url", url).
		Str("kind", kind.String()).
		Msg("requesting access token")

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(secretKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(kind.Request()).
		Post(url)
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("access token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessTokenResponse{}, err
	}

	var result models.AccessTokenResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("%w: %w", ErrMalformedTokenResult, err)
	}
	if result.AccessToken == "" {
		return models.AccessTokenResponse{}, fmt.Errorf("%w: empty access token", ErrMalformedTokenResult)
	}

	return result, nil
}
