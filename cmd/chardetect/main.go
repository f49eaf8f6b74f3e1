// Command chardetect prints the chardet-compatible encoding guess for files or stdin
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"chardetcompat/internal/core/legacy"
	"chardetcompat/internal/core/version"
	"chardetcompat/internal/modkit"
	"chardetcompat/internal/platform/config"
	"chardetcompat/internal/platform/logger"
	str "chardetcompat/internal/platform/strings"

	detectdom "chardetcompat/internal/services/detect/domain"
	detectmod "chardetcompat/internal/services/detect/module"
)

const stdinName = "<stdin>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// readFile is swapped in tests
var readFile = os.ReadFile

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chardetect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		rename   = fs.Bool("legacy", false, "rename encodings to chardet's spelling (default from CORE_DETECT_RENAME_LEGACY)")
		minimal  = fs.Bool("minimal", false, "print only the encoding")
		asJSON   = fs.Bool("json", false, "print one JSON object per input")
		maxBytes = fs.Int("max-bytes", 0, "inspect only the first N bytes (default from CORE_DETECT_MAX_BYTES)")
		showVer  = fs.Bool("version", false, "print version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: chardetect [flags] [FILE ...]\n\nreads stdin when no FILE is given or FILE is -\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVer {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	opt := logger.FromEnv()
	opt.Writer = stderr
	opt.Component = "chardetect"
	l := logger.New(opt)

	mod := detectmod.New(
		modkit.Deps{Cfg: config.New(), Log: &l},
		detectmod.Options{RenameLegacy: *rename, MaxBytes: *maxBytes},
	)
	det := modkit.MustPortsOf[detectdom.DetectorPort](mod)

	names := fs.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	status := 0
	inputs := make([]detectdom.Input, 0, len(names))
	for _, name := range names {
		var (
			b   []byte
			err error
		)
		if name == "-" {
			name = stdinName
			b, err = io.ReadAll(stdin)
		} else {
			b, err = readFile(name)
		}
		if err != nil {
			l.Error().Err(err).Str("file", name).Msg("read failed")
			status = 1
			continue
		}
		inputs = append(inputs, detectdom.Input{Source: name, Data: b})
	}

	for _, out := range det.DetectAll(context.Background(), inputs) {
		if out.Err != nil {
			l.Error().Err(out.Err).Str("file", out.Source).Msg("detect failed")
			status = 1
			continue
		}
		if err := printResult(stdout, out.Source, out.Result, *minimal, *asJSON); err != nil {
			l.Error().Err(err).Msg("write failed")
			return 1
		}
	}
	return status
}

type jsonLine struct {
	Name string `json:"name"`
	legacy.Result
}

func printResult(w io.Writer, name string, res legacy.Result, minimal, asJSON bool) error {
	switch {
	case asJSON:
		return json.NewEncoder(w).Encode(jsonLine{Name: name, Result: res})
	case minimal:
		_, err := fmt.Fprintln(w, str.DerefOr(res.Encoding, "none"))
		return err
	case res.Encoding == nil:
		_, err := fmt.Fprintf(w, "%s: no result\n", name)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s: %s with confidence %s\n", name, *res.Encoding,
			strconv.FormatFloat(res.Confidence, 'f', -1, 64))
		return err
	}
}
