// Package http provides the detect endpoints
package http

import (
	"io"
	"net/http"
	"strconv"

	"chardetcompat/internal/core/version"
	"chardetcompat/internal/modkit/httpkit"
	perr "chardetcompat/internal/platform/errors"
	pnet "chardetcompat/internal/platform/net"
	"chardetcompat/internal/services/detect/domain"
)

// DefaultMaxBodyBytes caps request bodies when Deps.MaxBodyBytes is unset
const DefaultMaxBodyBytes int64 = 10 << 20

// renameParam selects legacy spellings; every other query param is passed through as an ignored option
const renameParam = "rename_legacy"

// Deps are the handler dependencies
type Deps struct {
	Svc          domain.DetectorPort
	MaxBodyBytes int64
}

type handlers struct {
	deps Deps
}

// Register mounts the detect routes
func Register(r httpkit.Router, d Deps) {
	if d.MaxBodyBytes <= 0 {
		d.MaxBodyBytes = DefaultMaxBodyBytes
	}
	h := &handlers{deps: d}

	httpkit.Post(r, "/detect", h.detect)
	httpkit.Get(r, "/version", h.version)
}

// detect reads the raw body and returns the chardet-shaped result
func (h *handlers) detect(r *http.Request) (any, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, h.deps.MaxBodyBytes+1))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeIO, "read request body")
	}
	if int64(len(body)) > h.deps.MaxBodyBytes {
		return nil, perr.TooLargef("request body exceeds %d bytes", h.deps.MaxBodyBytes)
	}

	in := domain.Input{Source: pnet.RequestID(r.Context()), Data: body}
	for k, vs := range r.URL.Query() {
		if k == renameParam {
			b, err := strconv.ParseBool(lastOf(vs))
			if err != nil {
				return nil, perr.WithField(perr.InvalidArgf("%s must be a boolean", renameParam), renameParam)
			}
			in.Rename = &b
			continue
		}
		if in.Extra == nil {
			in.Extra = map[string]any{}
		}
		if len(vs) == 1 {
			in.Extra[k] = vs[0]
		} else {
			in.Extra[k] = vs
		}
	}

	return h.deps.Svc.Detect(r.Context(), in)
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func lastOf(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}
