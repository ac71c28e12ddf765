// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-sdk-demo/internal/logger"
)

const (
	contentTypeHTML       = "text/html; charset=utf-8"
	contentTypeCSS        = "text/css; charset=utf-8"
	contentTypeJavaScript = "application/javascript; charset=utf-8"
)

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CheckoutService.IndexPage(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.indexPage").Msg("error rendering index page")
		writeError(w, err)
		return
	}

	writeBody(w, contentTypeHTML, page)
}

func (h *Handler) stylesheet(w http.ResponseWriter, r *http.Request) {
	css, err := h.services.CheckoutService.Stylesheet(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.stylesheet").Msg("error rendering stylesheet")
		writeError(w, err)
		return
	}

	writeBody(w, contentTypeCSS, css)
}

func (h *Handler) clientScript(w http.ResponseWriter, r *http.Request) {
	script, err := h.services.CheckoutService.ClientScript(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.clientScript").Msg("error rendering client script")
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeBody(w, contentTypeJavaScript, script)
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// writeError answers with the mapped status and its standard text only, so
// no path, URL or upstream detail leaves the server.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, http.StatusText(status), status)
}
