// Package render builds the three response bodies of the checkout demo: the
// index page, the stylesheet and the client script.
//
// Templates are embedded into the binary and parsed once by [NewPageRenderer].
// Every render call is pure given its inputs and safe for concurrent use.
package render
