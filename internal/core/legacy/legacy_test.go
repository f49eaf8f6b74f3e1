package legacy

import (
	"bytes"
	"errors"
	"math"
	"sync"
	"testing"

	"chardetcompat/internal/core/charset"
	perr "chardetcompat/internal/platform/errors"
	"chardetcompat/internal/platform/logger"
	pstrings "chardetcompat/internal/platform/strings"
	kit "chardetcompat/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed returns a detector that always answers ms and records what it was fed
func fixed(ms charset.Matches, seen *[]byte) Detector {
	return DetectorFunc(func(b []byte) charset.Matches {
		if seen != nil {
			*seen = append([]byte(nil), b...)
		}
		return ms
	})
}

func one(m charset.Match) Detector { return fixed(charset.Matches{m}, nil) }

func newAdapter(t *testing.T, det Detector) (*Adapter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logger.New(logger.Options{Level: "debug", Format: "json", Writer: &buf})
	return New(det, WithLogger(&l)), &buf
}

func TestDetect_SwapsEncodingAndLanguage(t *testing.T) {
	a, _ := newAdapter(t, one(charset.Match{Encoding: "ascii", Language: "English", Chaos: 0.1, BOM: true}))

	got, err := a.Detect([]byte("hello"), Options{})
	require.NoError(t, err)

	require.NotNil(t, got.Encoding)
	assert.Equal(t, "English", *got.Encoding)
	assert.Equal(t, "ascii", got.Language)
	assert.Equal(t, 0.9, got.Confidence)
}

func TestDetect_NoCandidate(t *testing.T) {
	a, _ := newAdapter(t, fixed(nil, nil))

	got, err := a.Detect([]byte{0xde, 0xad}, Options{ShouldRenameLegacy: true})
	require.NoError(t, err)
	assert.Nil(t, got.Encoding)
	assert.Equal(t, "", got.Language)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestDetect_OnlyBestIsUsed(t *testing.T) {
	a, _ := newAdapter(t, fixed(charset.Matches{
		{Encoding: "cp1252", Language: "French", Chaos: 0.2},
		{Encoding: "iso8859_1", Language: "German", Chaos: 0.4},
	}, nil))

	got, err := a.Detect([]byte("x"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "French", pstrings.Deref(got.Encoding))
	assert.Equal(t, "cp1252", got.Language)
	assert.InDelta(t, 0.8, got.Confidence, 1e-12)
}

func TestDetect_ZeroChaosIsFullConfidence(t *testing.T) {
	a, _ := newAdapter(t, one(charset.Match{Encoding: "utf_8", Language: "English", Chaos: 0}))

	got, err := a.Detect([]byte("x"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestDetect_UnknownLanguageBlanksLanguageSlot(t *testing.T) {
	a, _ := newAdapter(t, one(charset.Match{Encoding: "cp1251", Language: charset.UnknownLanguage, Chaos: 0.3}))

	got, err := a.Detect([]byte("x"), Options{})
	require.NoError(t, err)
	assert.Equal(t, charset.UnknownLanguage, pstrings.Deref(got.Encoding))
	assert.Equal(t, "", got.Language)
	assert.InDelta(t, 0.7, got.Confidence, 1e-12)
}

func TestDetect_EmptyLanguageLabelIsAbsentEncoding(t *testing.T) {
	a, _ := newAdapter(t, one(charset.Match{Encoding: "cp1252", Language: "", Chaos: 0.5}))

	got, err := a.Detect([]byte("x"), Options{})
	require.NoError(t, err)
	assert.Nil(t, got.Encoding, "encoding must be nil rather than an empty string")
	assert.Equal(t, "cp1252", got.Language)
}

func TestDetect_UTF8SigSuffix(t *testing.T) {
	cases := []struct {
		name string
		bom  bool
		want string
	}{
		{name: "no bom gets suffix", bom: false, want: "utf_8_sig"},
		{name: "bom keeps label", bom: true, want: "utf_8"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// the encoding slot is fed from the language label
			a, _ := newAdapter(t, one(charset.Match{Encoding: "ascii", Language: charset.UTF8, BOM: c.bom}))
			got, err := a.Detect([]byte("x"), Options{})
			require.NoError(t, err)
			assert.Equal(t, c.want, pstrings.Deref(got.Encoding))
		})
	}
}

func TestDetect_SuffixOnlyForExactUTF8(t *testing.T) {
	a, _ := newAdapter(t, one(charset.Match{Encoding: "utf_8", Language: "utf_16", BOM: false}))

	got, err := a.Detect([]byte("x"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "utf_16", pstrings.Deref(got.Encoding))
}

func TestDetect_RenameLegacy(t *testing.T) {
	det := one(charset.Match{Encoding: "ascii", Language: "cp1252", Chaos: 0.25})

	a, _ := newAdapter(t, det)
	got, err := a.Detect([]byte("x"), Options{ShouldRenameLegacy: true})
	require.NoError(t, err)
	assert.Equal(t, "Windows-1252", pstrings.Deref(got.Encoding))

	got, err = a.Detect([]byte("x"), Options{ShouldRenameLegacy: false})
	require.NoError(t, err)
	assert.Equal(t, "cp1252", pstrings.Deref(got.Encoding))
}

func TestDetect_RenameAppliesAfterSuffix(t *testing.T) {
	a, _ := newAdapter(t, one(charset.Match{Encoding: "ascii", Language: charset.UTF8}))

	got, err := a.Detect([]byte("x"), Options{ShouldRenameLegacy: true})
	require.NoError(t, err)
	assert.Equal(t, "UTF-8-SIG", pstrings.Deref(got.Encoding))
}

func TestDetect_RenameMissLeavesValue(t *testing.T) {
	a, _ := newAdapter(t, one(charset.Match{Encoding: "ascii", Language: "English"}))

	got, err := a.Detect([]byte("x"), Options{ShouldRenameLegacy: true})
	require.NoError(t, err)
	assert.Equal(t, "English", pstrings.Deref(got.Encoding))
}

func TestDetect_RejectsNonByteInputs(t *testing.T) {
	called := false
	a, _ := newAdapter(t, DetectorFunc(func([]byte) charset.Matches {
		called = true
		return nil
	}))

	var nilBuf *bytes.Buffer
	cases := []struct {
		name  string
		input any
		typ   string
	}{
		{name: "string", input: "hello", typ: "string"},
		{name: "int", input: 42, typ: "int"},
		{name: "nil", input: nil, typ: "<nil>"},
		{name: "rune slice", input: []rune("hi"), typ: "[]int32"},
		{name: "buffer value", input: bytes.Buffer{}, typ: "bytes.Buffer"},
		{name: "nil buffer", input: nilBuf, typ: "*bytes.Buffer"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := a.Detect(c.input, Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTypeArgument))
			assert.True(t, perr.IsCode(err, perr.ErrorCodeTypeArgument))
			assert.Contains(t, err.Error(), "got: "+c.typ)

			e, ok := perr.As(err)
			require.True(t, ok)
			assert.Equal(t, "legacy.Detect", e.Op())
		})
	}
	assert.False(t, called, "detector must not run for rejected inputs")
}

// A *bytes.Buffer is assumed to end in a terminator byte, so the last byte is
// never analyzed. The rationale is inherited and unverified; the behavior is kept as is
func TestDetect_BufferDropsLastByte(t *testing.T) {
	var seen []byte
	a, _ := newAdapter(t, fixed(nil, &seen))

	buf := bytes.NewBufferString("abcdef")
	_, err := a.Detect(buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, []byte("abcde"), seen)
	assert.Equal(t, "abcdef", buf.String(), "the caller's buffer is not modified")

	_, err = a.Detect(new(bytes.Buffer), Options{})
	require.NoError(t, err)
	assert.Empty(t, seen)
}

func TestDetect_ByteSliceIsNotTruncated(t *testing.T) {
	var seen []byte
	a, _ := newAdapter(t, fixed(nil, &seen))

	_, err := a.Detect([]byte("abcdef"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdef"), seen)
}

func TestDetect_ExtraOptionsWarnButDoNotChangeResult(t *testing.T) {
	det := one(charset.Match{Encoding: "ascii", Language: "English", Chaos: 0.1})

	a, logs := newAdapter(t, det)
	want, err := a.Detect([]byte("x"), Options{})
	require.NoError(t, err)
	assert.Empty(t, logs.String(), "no warning without extra options")

	got, err := a.Detect([]byte("x"), Options{Extra: map[string]any{"threshold": 0.2, "cp_isolation": []string{"cp1252"}}})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	out := logs.String()
	kit.MustContain(t, out, `"level":"warn"`)
	kit.MustContain(t, out, "cp_isolation,threshold")
	kit.MustContain(t, out, `"ignored":["cp_isolation","threshold"]`)
}

func TestDetect_ExtraOptionsWarnEvenOnTypeError(t *testing.T) {
	a, logs := newAdapter(t, fixed(nil, nil))

	_, err := a.Detect(3.14, Options{Extra: map[string]any{"steps": 5}})
	require.ErrorIs(t, err, ErrTypeArgument)
	kit.MustContain(t, logs.String(), "steps")
}

func TestDetect_ConfidenceStaysInRange(t *testing.T) {
	for _, chaos := range []float64{-0.5, 0, 0.33, 1, 1.7, math.NaN(), math.Inf(1), math.Inf(-1)} {
		a, _ := newAdapter(t, one(charset.Match{Encoding: "ascii", Language: "English", Chaos: chaos}))
		got, err := a.Detect([]byte("x"), Options{})
		require.NoError(t, err)
		assert.False(t, math.IsNaN(got.Confidence) || math.IsInf(got.Confidence, 0), "chaos %v", chaos)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, "chaos %v", chaos)
		assert.LessOrEqual(t, got.Confidence, 1.0, "chaos %v", chaos)
	}
}

func TestDetect_ConcurrentCalls(t *testing.T) {
	a, _ := newAdapter(t, DetectorFunc(func(b []byte) charset.Matches {
		return charset.Matches{{Encoding: "cp1252", Language: string(b), Chaos: 0.5}}
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := []byte{'a' + byte(i)}
			got, err := a.Detect(in, Options{ShouldRenameLegacy: true})
			assert.NoError(t, err)
			assert.Equal(t, string(in), pstrings.Deref(got.Encoding))
		}(i)
	}
	wg.Wait()
}

func TestNew_RequiresDetector(t *testing.T) {
	kit.MustPanic(t, func() { New(nil) })
}

func TestDefault_RealDetector(t *testing.T) {
	got, err := Detect([]byte{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{}, got)
	assert.Same(t, Default(), Default())
}
