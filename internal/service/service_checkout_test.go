package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-web-sdk-demo/internal/adapter"
	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
	"github.com/MKhiriev/go-web-sdk-demo/internal/mock"
	"github.com/MKhiriev/go-web-sdk-demo/internal/render"
	"github.com/MKhiriev/go-web-sdk-demo/internal/sdkconfig"
	"github.com/MKhiriev/go-web-sdk-demo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfigPath = "/etc/checkout/dw-config.toml"

func newTestCheckoutSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	presetName string,
	log *logger.Logger,
) (
	CheckoutService,
	*mock.MockConfigStore,
	*mock.MockTokenAdapter,
) {
	t.Helper()
	mockStore := mock.NewMockConfigStore(ctrl)
	mockStore.EXPECT().Path().Return(testConfigPath).AnyTimes()
	mockTokens := mock.NewMockTokenAdapter(ctrl)

	renderer, err := render.NewPageRenderer()
	require.NoError(t, err)

	preset, err := models.PresetByName(presetName)
	require.NoError(t, err)

	return NewCheckoutService(mockStore, mockTokens, renderer, preset, log), mockStore, mockTokens
}

func flatConfig() models.CheckoutConfig {
	return models.CheckoutConfig{
		SDKVersion:   "1.0",
		SecretKey:    "sk_test",
		APIURL:       "https://api.example.com",
		TokenizerURL: "https://tokenizer.example.com",
		Environments: map[string]models.Environment{},
	}
}

func sandboxConfig() models.CheckoutConfig {
	cfg := flatConfig()
	cfg.Environment = "sandbox"
	cfg.Environments = map[string]models.Environment{
		"sandbox": {APIURL: "https://sandbox.example.com"},
	}
	return cfg
}

// ── IndexPage ────────────────────────────────────────────────────────────────

func TestCheckoutService_IndexPage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, _ := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(flatConfig(), nil)

	page, err := svc.IndexPage(context.Background())

	require.NoError(t, err)
	assert.Contains(t, string(page), "https://"+models.DefaultSDKHost+"/1.0/js/client.min.js")
	assert.NotContains(t, string(page), "sk_test")
}

func TestCheckoutService_IndexPage_CustomHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, _ := newTestCheckoutSvc(t, ctrl, models.PresetHostedFields, logger.Nop())

	cfg := flatConfig()
	cfg.SDKHost = "sdk.example.com"
	mockStore.EXPECT().Load(gomock.Any()).Return(cfg, nil)

	page, err := svc.IndexPage(context.Background())

	require.NoError(t, err)
	assert.Contains(t, string(page), "https://sdk.example.com/1.0/js/hosted-fields.min.js")
}

func TestCheckoutService_IndexPage_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, _ := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(models.CheckoutConfig{}, sdkconfig.ErrConfigUnreadable)

	page, err := svc.IndexPage(context.Background())

	assert.Nil(t, page)
	assert.ErrorIs(t, err, sdkconfig.ErrConfigUnreadable)
}

// ── Stylesheet ───────────────────────────────────────────────────────────────

func TestCheckoutService_Stylesheet_StaticPreset_DoesNotLoadConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, logger.Nop())

	css, err := svc.Stylesheet(context.Background())

	require.NoError(t, err)
	assert.Contains(t, string(css), "#output")
}

func TestCheckoutService_Stylesheet_ConfigPreset_LoadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, _ := newTestCheckoutSvc(t, ctrl, models.PresetHostedFields, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(models.CheckoutConfig{}, sdkconfig.ErrConfigMalformed)

	css, err := svc.Stylesheet(context.Background())

	assert.Nil(t, css)
	assert.ErrorIs(t, err, sdkconfig.ErrConfigMalformed)
}

func TestCheckoutService_Stylesheet_ConfigPreset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, _ := newTestCheckoutSvc(t, ctrl, models.PresetHostedFields, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(flatConfig(), nil)

	css, err := svc.Stylesheet(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, css)
}

// ── ClientScript ─────────────────────────────────────────────────────────────

func TestCheckoutService_ClientScript_FlatURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, mockTokens := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		mockStore.EXPECT().Load(ctx).Return(flatConfig(), nil),
		mockTokens.EXPECT().
			IssueAccessToken(ctx, "https://api.example.com", "sk_test", models.OneTimePassword).
			Return(models.AccessTokenResponse{AccessToken: "xyz"}, nil),
	)

	script, err := svc.ClientScript(ctx)

	require.NoError(t, err)
	js := string(script)
	assert.Contains(t, js, "useFlatUrls=true")
	assert.Contains(t, js, `accessToken="xyz"`)
	assert.Contains(t, js, `mainApiUrl="https://api.example.com"`)
	assert.Contains(t, js, `tokenizerApiUrl="https://tokenizer.example.com"`)
	assert.NotContains(t, js, "sk_test")
}

func TestCheckoutService_ClientScript_NamedEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, mockTokens := newTestCheckoutSvc(t, ctrl, models.PresetHostedFields, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(sandboxConfig(), nil)
	mockTokens.EXPECT().
		IssueAccessToken(gomock.Any(), "https://sandbox.example.com", "sk_test", models.LimitedScope).
		Return(models.AccessTokenResponse{AccessToken: "tok_sb"}, nil)

	script, err := svc.ClientScript(context.Background())

	require.NoError(t, err)
	js := string(script)
	assert.Contains(t, js, "useFlatUrls=false")
	assert.Contains(t, js, `environment="sandbox"`)
	assert.Contains(t, js, `accessToken="tok_sb"`)
}

func TestCheckoutService_ClientScript_UnknownEnvironment_Warns(t *testing.T) {
	ctrl := gomock.NewController(t)
	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)
	svc, mockStore, mockTokens := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, log)

	cfg := sandboxConfig()
	cfg.Environment = "staging"
	mockStore.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	mockTokens.EXPECT().
		IssueAccessToken(gomock.Any(), "", "sk_test", models.OneTimePassword).
		Return(models.AccessTokenResponse{}, &adapter.TokenIssuanceError{URL: "/access-tokens", Cause: adapter.ErrEmptyBaseURL})

	_, err := svc.ClientScript(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrTokenIssuanceFailed)
	assert.Contains(t, buf.String(), `"environment":"staging"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestCheckoutService_ClientScript_ConfigError_NoTokenRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, _ := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(models.CheckoutConfig{}, sdkconfig.ErrConfigMalformed)

	script, err := svc.ClientScript(context.Background())

	assert.Nil(t, script)
	assert.ErrorIs(t, err, sdkconfig.ErrConfigMalformed)
}

func TestCheckoutService_ClientScript_IssuanceError_LogsURLNotSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)
	svc, mockStore, mockTokens := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, log)

	issuanceErr := &adapter.TokenIssuanceError{
		URL:   "https://api.example.com/access-tokens",
		Cause: adapter.ErrUnauthorized,
	}
	mockStore.EXPECT().Load(gomock.Any()).Return(flatConfig(), nil)
	mockTokens.EXPECT().
		IssueAccessToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AccessTokenResponse{}, issuanceErr)

	script, err := svc.ClientScript(context.Background())

	assert.Nil(t, script)
	require.Error(t, err)
	assert.True(t, errors.Is(err, adapter.ErrUnauthorized))
	assert.Contains(t, buf.String(), `"url":"https://api.example.com/access-tokens"`)
	assert.NotContains(t, buf.String(), "sk_test")
}

func TestCheckoutService_ClientScript_ReloadsConfigEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, mockTokens := newTestCheckoutSvc(t, ctrl, models.PresetDigitalWallets, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(flatConfig(), nil).Times(2)
	mockTokens.EXPECT().
		IssueAccessToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AccessTokenResponse{AccessToken: "xyz"}, nil).
		Times(2)

	for range 2 {
		_, err := svc.ClientScript(context.Background())
		require.NoError(t, err)
	}
}

func TestCheckoutService_ClientScript_RenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mock.NewMockConfigStore(ctrl)
	mockTokens := mock.NewMockTokenAdapter(ctrl)
	mockRenderer := mock.NewMockPageRenderer(ctrl)
	preset, err := models.PresetByName(models.PresetDigitalWallets)
	require.NoError(t, err)

	svc := NewCheckoutService(mockStore, mockTokens, mockRenderer, preset, logger.Nop())

	mockStore.EXPECT().Load(gomock.Any()).Return(flatConfig(), nil)
	mockTokens.EXPECT().
		IssueAccessToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AccessTokenResponse{AccessToken: "xyz"}, nil)
	mockRenderer.EXPECT().
		RenderClientScript(preset, render.ScriptContext{
			UseFlatURLs:     true,
			AccessToken:     "xyz",
			MainAPIURL:      "https://api.example.com",
			TokenizerAPIURL: "https://tokenizer.example.com",
		}).
		Return(nil, render.ErrRenderClientScript)

	_, err = svc.ClientScript(context.Background())

	assert.ErrorIs(t, err, render.ErrRenderClientScript)
}
