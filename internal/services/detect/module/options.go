package module

import (
	"chardetcompat/internal/platform/config"
	dhttp "chardetcompat/internal/services/detect/http"
)

// Options holds configuration settings for the detect module
type Options struct {
	MaxBytes     int  // charset inspection cap, 0 = whole input
	Markup       bool // strip HTML/XML markup before scoring
	RenameLegacy bool
	Workers      int
	MaxBodyBytes int64
}

// FromConfig extracts Options from the given root config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("CORE_DETECT_")
	api := cfg.Prefix("CORE_API_")
	return Options{
		MaxBytes:     df.MayInt("MAX_BYTES", 0),
		Markup:       df.MayBool("MARKUP", false),
		RenameLegacy: df.MayBool("RENAME_LEGACY", false),
		Workers:      df.MayInt("WORKERS", 4),
		MaxBodyBytes: api.MayInt64("MAX_BODY_BYTES", dhttp.DefaultMaxBodyBytes),
	}
}
