// Package module implements the detect module
package module

import (
	"net/http"

	"chardetcompat/internal/core/charset"
	"chardetcompat/internal/core/legacy"
	"chardetcompat/internal/modkit"
	"chardetcompat/internal/modkit/httpkit"
	"chardetcompat/internal/services/detect/domain"
	dhttp "chardetcompat/internal/services/detect/http"
	"chardetcompat/internal/services/detect/service"
)

// Ports exposed by the detect module
type Ports struct {
	Detector domain.DetectorPort
}

// Module implements modkit.Module
type Module struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)

	opts  Options
	ports Ports
}

// New constructs a detect module. Zero fields in overrides keep the config values;
// RenameLegacy and Markup are ORed with config.
// WithPorts(domain.AdapterPort) replaces the charset-backed adapter
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.MaxBytes != 0 {
		cfg.MaxBytes = overrides.MaxBytes
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.MaxBodyBytes != 0 {
		cfg.MaxBodyBytes = overrides.MaxBodyBytes
	}
	cfg.RenameLegacy = cfg.RenameLegacy || overrides.RenameLegacy
	cfg.Markup = cfg.Markup || overrides.Markup

	var adapter domain.AdapterPort
	switch p := b.Ports.(type) {
	case domain.AdapterPort:
		adapter = p
	case nil:
		det := charset.New(
			charset.WithMaxBytes(cfg.MaxBytes),
			charset.WithMarkup(cfg.Markup),
			charset.WithLogger(deps.Logger("charset")),
		)
		adapter = legacy.New(det, legacy.WithLogger(deps.Logger("legacy")))
	default:
		panic("detect module: expected WithPorts(detect/domain.AdapterPort)")
	}

	svc := service.New(adapter, service.Config{
		RenameLegacy: cfg.RenameLegacy,
		Workers:      cfg.Workers,
	}, deps.Logger(b.Name))

	return &Module{
		name:     b.Name,
		prefix:   b.Prefix,
		mws:      b.Mw,
		register: b.Register,
		opts:     cfg,
		ports:    Ports{Detector: svc},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the merged options the module was built with
func (m *Module) Options() Options { return m.opts }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		dhttp.Register(rr, dhttp.Deps{
			Svc:          m.ports.Detector,
			MaxBodyBytes: m.opts.MaxBodyBytes,
		})
		m.register(rr)
	})
}
