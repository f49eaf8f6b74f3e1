package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := `{"level":"warn","ignored":["steps","threshold"]}`
	MustContain(t, haystack, "steps")
	MustContain(t, haystack, `"level":"warn"`)
}

func TestMustNotContain(t *testing.T) {
	t.Parallel()

	MustNotContain(t, "encoding utf_8_sig", "utf-8")
}
