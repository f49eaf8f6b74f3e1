// Package charset is the default upstream detector behind the legacy adapter.
// Scoring is delegated to github.com/saintfish/chardet; this package only turns its
// results into ranked Matches with codec labels, language names, chaos and BOM flags
package charset

import (
	"math"
	"sync"

	"chardetcompat/internal/platform/logger"

	"github.com/saintfish/chardet"
)

// Options controls detector behavior
type Options struct {
	// MaxBytes caps how much of the input is inspected (0 = all)
	MaxBytes int
	// Markup strips HTML/XML tags before scoring
	Markup bool
}

// Option mutates Options or the detector wiring
type Option func(*Detector)

// WithMaxBytes limits inspection to the first n bytes
func WithMaxBytes(n int) Option { return func(d *Detector) { d.opts.MaxBytes = n } }

// WithMarkup enables tag stripping for HTML/XML payloads
func WithMarkup(on bool) Option { return func(d *Detector) { d.opts.Markup = on } }

// WithLogger overrides the component logger
func WithLogger(l *logger.Logger) Option { return func(d *Detector) { d.log = l } }

// Detector ranks candidate encodings for byte sequences. Safe for concurrent use
type Detector struct {
	opts Options
	log  *logger.Logger
}

// New creates a Detector
func New(opts ...Option) *Detector {
	d := &Detector{}
	for _, o := range opts {
		o(d)
	}
	if d.log == nil {
		d.log = logger.Named("charset")
	}
	return d
}

// detectAll is the library seam; tests swap it for canned results
var detectAll = func(markup bool, b []byte) ([]chardet.Result, error) {
	if markup {
		return chardet.NewHtmlDetector().DetectAll(b)
	}
	return chardet.NewTextDetector().DetectAll(b)
}

// FromBytes returns every candidate for b, best first. Empty input and
// "not detected" both yield an empty result
func (d *Detector) FromBytes(b []byte) Matches {
	if len(b) == 0 {
		return nil
	}
	if d.opts.MaxBytes > 0 && len(b) > d.opts.MaxBytes {
		b = b[:d.opts.MaxBytes]
	}

	results, err := detectAll(d.opts.Markup, b)
	if err != nil {
		d.log.Debug().Err(err).Int("bytes", len(b)).Msg("no charset candidate")
		return nil
	}

	out := make(Matches, 0, len(results))
	for _, r := range results {
		label := codecLabel(r.Charset)
		out = append(out, Match{
			Encoding: label,
			Language: languageName(r.Language),
			Chaos:    chaosOf(r.Confidence),
			BOM:      hasBOM(label, b),
		})
	}
	out = rank(out)

	if e := d.log.Debug(); e.Enabled() {
		e.Int("bytes", len(b)).Strs("candidates", out.Encodings()).Msg("charset ranked")
	}
	return out
}

// chaosOf maps a 0..100 library confidence onto a 0..1 chaos score
func chaosOf(confidence int) float64 {
	c := 1 - float64(confidence)/100
	return math.Min(1, math.Max(0, c))
}

var std = sync.OnceValue(func() *Detector { return New() })

// Default returns the shared process-wide detector
func Default() *Detector { return std() }

// FromBytes runs the default detector
func FromBytes(b []byte) Matches { return Default().FromBytes(b) }
