// Package legacy exposes chardet's detect() result shape on top of the ranked
// charset detector, so callers written against chardet keep working unchanged.
//
// The translation keeps chardet-compat quirks on purpose:
//   - the encoding slot carries the match's language label and the language slot
//     carries its encoding label
//   - "utf_8" without a byte order mark is reported as "utf_8_sig"
//   - a *bytes.Buffer input loses its final byte before detection
package legacy

import (
	"bytes"
	"math"
	"strings"
	"sync"

	"chardetcompat/internal/core/charset"
	perr "chardetcompat/internal/platform/errors"
	"chardetcompat/internal/platform/logger"
	pstrings "chardetcompat/internal/platform/strings"
)

// ErrTypeArgument is wrapped by every error Detect returns for an unsupported input type
var ErrTypeArgument = perr.New(perr.ErrorCodeTypeArgument, "type argument error")

// Result is the chardet-shaped detection result
type Result struct {
	Encoding   *string `json:"encoding"` // nil when nothing was detected, never ""
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Options are the per-call knobs of Detect
type Options struct {
	// ShouldRenameLegacy rewrites the encoding to chardet's spelling when the table knows it
	ShouldRenameLegacy bool
	// Extra holds keyword options older callers pass along. They are never applied;
	// a non-empty set only produces a warning naming them
	Extra map[string]any
}

// Detector is the upstream ranked detector consumed by the adapter
type Detector interface {
	FromBytes(b []byte) charset.Matches
}

// DetectorFunc adapts a plain function to Detector
type DetectorFunc func(b []byte) charset.Matches

// FromBytes calls f(b)
func (f DetectorFunc) FromBytes(b []byte) charset.Matches { return f(b) }

// Adapter translates ranked matches into Results. Safe for concurrent use
type Adapter struct {
	det Detector
	log *logger.Logger
}

// Option configures an Adapter
type Option func(*Adapter)

// WithLogger overrides the logger warnings go to
func WithLogger(l *logger.Logger) Option { return func(a *Adapter) { a.log = l } }

// New creates an Adapter over det; det must not be nil
func New(det Detector, opts ...Option) *Adapter {
	if det == nil {
		panic("legacy: detector is required")
	}
	a := &Adapter{det: det}
	for _, o := range opts {
		o(a)
	}
	if a.log == nil {
		a.log = logger.Named("legacy")
	}
	return a
}

// Detect inspects input, which must be a []byte or a *bytes.Buffer, and returns
// the chardet-shaped result for the detector's best match.
// Only an unsupported input type is an error; finding nothing is a zero Result
func (a *Adapter) Detect(input any, opts Options) (Result, error) {
	if len(opts.Extra) > 0 {
		names := pstrings.SortedKeys(opts.Extra)
		a.log.Warn().
			Strs("ignored", names).
			Msgf("disregarding arguments '%s' in legacy function Detect()", strings.Join(names, ","))
	}

	b, err := bytesOf(input)
	if err != nil {
		return Result{}, perr.WithOp(err, "legacy.Detect")
	}

	return translate(a.det.FromBytes(b).Best(), opts.ShouldRenameLegacy), nil
}

// bytesOf validates input and applies the buffer truncation rule
func bytesOf(input any) ([]byte, error) {
	switch v := input.(type) {
	case []byte:
		return v, nil
	case *bytes.Buffer:
		if v == nil {
			break
		}
		// buffer callers are assumed to carry a trailing terminator byte
		b := v.Bytes()
		if len(b) > 0 {
			b = b[:len(b)-1]
		}
		return b, nil
	}
	return nil, perr.Wrapf(ErrTypeArgument, perr.ErrorCodeTypeArgument,
		"expected object of type []byte or *bytes.Buffer, got: %T", input)
}

func translate(m *charset.Match, rename bool) Result {
	if m == nil {
		return Result{}
	}

	encoding := m.Language
	language := ""
	if m.Language != charset.UnknownLanguage {
		language = m.Encoding
	}

	if encoding == charset.UTF8 && !m.BOM {
		encoding += "_sig"
	}

	if rename {
		if v, ok := charsetCorrespondence[encoding]; ok {
			encoding = v
		}
	}

	return Result{
		Encoding:   pstrings.Ptr(encoding),
		Language:   language,
		Confidence: confidenceOf(m.Chaos),
	}
}

// confidenceOf is 1-chaos, kept finite and inside [0,1]
func confidenceOf(chaos float64) float64 {
	if math.IsNaN(chaos) {
		return 0
	}
	return math.Min(1, math.Max(0, 1-chaos))
}

var std = sync.OnceValue(func() *Adapter { return New(charset.Default()) })

// Default returns the shared Adapter backed by charset.Default
func Default() *Adapter { return std() }

// Detect runs the default Adapter
func Detect(input any, opts Options) (Result, error) { return Default().Detect(input, opts) }
