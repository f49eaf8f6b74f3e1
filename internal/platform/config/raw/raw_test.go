package raw

import (
	"testing"
)

func TestConfGet(t *testing.T) {
	t.Setenv("APP_NAME", " chardetect ")
	t.Setenv("LOG_FORMAT", " JSON ")

	root := New()
	log := root.Prefix("LOG_")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "root trimmed", got: root.Get("APP_NAME", "x"), want: "chardetect"},
		{name: "prefixed hit", got: log.Get("FORMAT", "x"), want: "JSON"},
		{name: "lower folds", got: log.GetLower("FORMAT", "x"), want: "json"},
		{name: "missing returns default", got: log.Get("MISSING", "defv"), want: "defv"},
		{name: "lower default folds too", got: log.GetLower("MISSING", "Console"), want: "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("B_")

	t.Setenv("B_T1", "true")
	t.Setenv("B_T2", "1")
	t.Setenv("B_T3", "YES")
	t.Setenv("B_T4", " on ")
	t.Setenv("B_F1", "false")
	t.Setenv("B_F2", "nah")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{key: "T1", def: false, want: true},
		{key: "T2", def: false, want: true},
		{key: "T3", def: false, want: true},
		{key: "T4", def: false, want: true},
		{key: "F1", def: true, want: false},
		{key: "F2", def: true, want: false},
		{key: "MISSING", def: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetBool(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("SYS_")

	t.Setenv("SYS_OK", "42")
	t.Setenv("SYS_WS", "  7  ")
	t.Setenv("SYS_NONNUM", "12x")
	t.Setenv("SYS_NEG", "-5")

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{key: "OK", def: 0, want: 42},
		{key: "WS", def: 1, want: 7},
		{key: "NONNUM", def: 9, want: 9},
		{key: "NEG", def: 3, want: 3},
		{key: "MISSING", def: 11, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.GetInt(tt.key, tt.def); got != tt.want {
				t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}
