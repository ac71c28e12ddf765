package render

import "errors"

var (
	ErrRenderIndexPage    = errors.New("error rendering index page")
	ErrRenderClientScript = errors.New("error rendering client script")
)
