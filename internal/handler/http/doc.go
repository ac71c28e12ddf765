// Package http implements the HTTP transport layer of the checkout demo.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, request metrics and
// response compression are handled in this package before requests are
// delegated to the service layer. Every service failure is answered with a
// bare status; the details only reach the log.
package http
