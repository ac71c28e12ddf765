package config

import "github.com/MKhiriev/go-web-sdk-demo/models"

// Defaults applied when no source sets a value.
const (
	DefaultHTTPAddress = "0.0.0.0:9797"
	DefaultVersion     = "dev"
	DefaultLogLevel    = "debug"
	DefaultPreset      = models.PresetDigitalWallets
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
		Checkout: Checkout{
			Preset: DefaultPreset,
		},
	}
}

// resolveCheckoutPath falls back to the preset's default document name. An
// unknown preset is left for validate to report.
func (cfg *StructuredConfig) resolveCheckoutPath() {
	if cfg.Checkout.ConfigPath != "" {
		return
	}
	if preset, err := models.PresetByName(cfg.Checkout.Preset); err == nil {
		cfg.Checkout.ConfigPath = preset.DefaultConfigPath
	}
}
