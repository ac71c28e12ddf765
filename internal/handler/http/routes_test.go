package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
	"github.com/MKhiriev/go-web-sdk-demo/internal/mock"
	"github.com/MKhiriev/go-web-sdk-demo/internal/service"
	"github.com/MKhiriev/go-web-sdk-demo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, presetName string) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)

	checkout := mock.NewMockCheckoutService(ctrl)
	checkout.EXPECT().IndexPage(gomock.Any()).Return([]byte("<html></html>"), nil).AnyTimes()
	checkout.EXPECT().Stylesheet(gomock.Any()).Return([]byte("body {}"), nil).AnyTimes()
	checkout.EXPECT().ClientScript(gomock.Any()).Return([]byte("const useFlatUrls=true;"), nil).AnyTimes()

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	preset, err := models.PresetByName(presetName)
	require.NoError(t, err)

	h := NewHandler(&service.Services{
		AppInfoService:  appInfo,
		CheckoutService: checkout,
	}, preset, logger.Nop())
	return h.Init()
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestInit_Routes(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		path   string
		want   int
	}{
		{name: "wallets index", preset: models.PresetDigitalWallets, path: "/", want: http.StatusOK},
		{name: "wallets stylesheet", preset: models.PresetDigitalWallets, path: "/style.css", want: http.StatusOK},
		{name: "wallets script", preset: models.PresetDigitalWallets, path: "/index.js", want: http.StatusOK},
		{name: "wallets has no app.js", preset: models.PresetDigitalWallets, path: "/app.js", want: http.StatusNotFound},
		{name: "hosted fields script", preset: models.PresetHostedFields, path: "/app.js", want: http.StatusOK},
		{name: "hosted fields has no index.js", preset: models.PresetHostedFields, path: "/index.js", want: http.StatusNotFound},
		{name: "version", preset: models.PresetHostedFields, path: "/version", want: http.StatusOK},
		{name: "metrics", preset: models.PresetDigitalWallets, path: "/metrics", want: http.StatusOK},
		{name: "unknown", preset: models.PresetDigitalWallets, path: "/api/user/login", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newTestRouter(t, tt.preset), http.MethodGet, tt.path)

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, models.PresetDigitalWallets)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		for _, path := range []string{"/", "/style.css", "/index.js", "/version"} {
			rr := serve(router, method, path)
			assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", method, path)
		}
	}
}

func TestInit_ContentTypes(t *testing.T) {
	router := newTestRouter(t, models.PresetDigitalWallets)

	assert.Equal(t, contentTypeHTML, serve(router, http.MethodGet, "/").Header().Get("Content-Type"))
	assert.Equal(t, contentTypeCSS, serve(router, http.MethodGet, "/style.css").Header().Get("Content-Type"))
	assert.Equal(t, contentTypeJavaScript, serve(router, http.MethodGet, "/index.js").Header().Get("Content-Type"))
}

func TestInit_StaticHeaders(t *testing.T) {
	rr := serve(newTestRouter(t, models.PresetDigitalWallets), http.MethodGet, "/")

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, models.PresetDigitalWallets)

	assert.NotEmpty(t, serve(router, http.MethodGet, "/").Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/style.css", nil)
	req.Header.Set(traceIDHeader, "incoming-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "incoming-id", rr.Header().Get(traceIDHeader))
}

func TestInit_GZip(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/index.js", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	newTestRouter(t, models.PresetDigitalWallets).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "const useFlatUrls=true;", gunzip(t, rr.Body))
}

func TestInit_MetricsRecordRoutePattern(t *testing.T) {
	router := newTestRouter(t, models.PresetHostedFields)

	serve(router, http.MethodGet, "/app.js")
	serve(router, http.MethodGet, "/nowhere")

	body := serve(router, http.MethodGet, "/metrics").Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/app.js",status="200"}`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="unmatched",status="404"}`)
	assert.NotContains(t, body, `route="/nowhere"`)
}
