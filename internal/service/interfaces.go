package service

import (
	"context"

	"github.com/MKhiriev/go-web-sdk-demo/internal/render"
	"github.com/MKhiriev/go-web-sdk-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CheckoutService produces the three checkout demo payloads. Every call reads
// the checkout document again; nothing is retained between calls.
type CheckoutService interface {
	// IndexPage renders the HTML page with the versioned SDK script tags.
	IndexPage(ctx context.Context) ([]byte, error)

	// Stylesheet returns the CSS document. Depending on the preset the
	// checkout document is loaded first and a load failure is returned.
	Stylesheet(ctx context.Context) ([]byte, error)

	// ClientScript issues a fresh access token and renders the client script
	// around it.
	ClientScript(ctx context.Context) ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConfigStore loads the checkout document.
type ConfigStore interface {
	Load(ctx context.Context) (models.CheckoutConfig, error)

	// Path is the location of the document, used for diagnostics only.
	Path() string
}

// PageRenderer renders the checkout payloads from already resolved values.
type PageRenderer interface {
	RenderIndexPage(preset models.Preset, sdkHost, sdkVersion string) ([]byte, error)
	RenderStylesheet() []byte
	RenderClientScript(preset models.Preset, sc render.ScriptContext) ([]byte, error)
}
