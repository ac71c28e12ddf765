package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-sdk-demo/internal/adapter"
	"github.com/MKhiriev/go-web-sdk-demo/internal/render"
	"github.com/MKhiriev/go-web-sdk-demo/internal/sdkconfig"
)

var errorStatusMap = map[error]int{
	sdkconfig.ErrConfigUnreadable: http.StatusInternalServerError,
	sdkconfig.ErrConfigMalformed:  http.StatusInternalServerError,

	adapter.ErrTokenIssuanceFailed: http.StatusInternalServerError,

	render.ErrRenderIndexPage:    http.StatusInternalServerError,
	render.ErrRenderClientScript: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
