// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/MKhiriev/go-web-sdk-demo/models"
)

//go:embed templates
var templatesFS embed.FS

const (
	indexTemplate      = "templates/index.html.tmpl"
	stylesheetFile     = "templates/style.css"
	clientTemplate     = "templates/client.js.tmpl"
	clientTemplateName = "client.js.tmpl"
	indexTemplateName  = "index.html.tmpl"
)

// ScriptContext is the set of values injected into the client script.
type ScriptContext struct {
	// UseFlatURLs is true when no named environment is selected; the script
	// then trusts MainAPIURL and TokenizerAPIURL instead of Environment.
	UseFlatURLs bool

	AccessToken     string
	Environment     string
	MainAPIURL      string
	TokenizerAPIURL string
}

type indexData struct {
	Preset       models.Preset
	HostedFields bool
	SDKHost      string
	SDKVersion   string
}

type scriptData struct {
	ScriptContext
	HostedFields bool
}

// PageRenderer renders the checkout demo payloads from embedded templates.
type PageRenderer struct {
	index      *htmltemplate.Template
	script     *texttemplate.Template
	stylesheet []byte
}

// NewPageRenderer parses the embedded templates.
func NewPageRenderer() (*PageRenderer, error) {
	index, err := htmltemplate.ParseFS(templatesFS, indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing index page template: %w", err)
	}

	script, err := texttemplate.New(clientTemplateName).
		Funcs(texttemplate.FuncMap{"json": jsonString}).
		ParseFS(templatesFS, clientTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing client script template: %w", err)
	}

	stylesheet, err := templatesFS.ReadFile(stylesheetFile)
	if err != nil {
		return nil, fmt.Errorf("error reading stylesheet: %w", err)
	}

	return &PageRenderer{
		index:      index,
		script:     script,
		stylesheet: stylesheet,
	}, nil
}

// RenderIndexPage renders the HTML page that loads the SDK scripts of
// sdkVersion from sdkHost and the preset's client script.
func (p *PageRenderer) RenderIndexPage(preset models.Preset, sdkHost, sdkVersion string) ([]byte, error) {
	data := indexData{
		Preset:       preset,
		HostedFields: preset.Name == models.PresetHostedFields,
		SDKHost:      sdkHost,
		SDKVersion:   sdkVersion,
	}

	var buf bytes.Buffer
	if err := p.index.ExecuteTemplate(&buf, indexTemplateName, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderIndexPage, err)
	}
	return buf.Bytes(), nil
}

// RenderStylesheet returns the static stylesheet.
func (p *PageRenderer) RenderStylesheet() []byte {
	return bytes.Clone(p.stylesheet)
}

// RenderClientScript renders the client script of preset with the values of
// sc declared as constants at the top of the script.
func (p *PageRenderer) RenderClientScript(preset models.Preset, sc ScriptContext) ([]byte, error) {
	data := scriptData{
		ScriptContext: sc,
		HostedFields:  preset.Name == models.PresetHostedFields,
	}

	var buf bytes.Buffer
	if err := p.script.ExecuteTemplate(&buf, clientTemplateName, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderClientScript, err)
	}
	return buf.Bytes(), nil
}

// jsonString encodes s as a JSON string literal, which is also a valid
// JavaScript string literal. '<', '>' and '&' are escaped so the value cannot
// close a surrounding script element.
func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
