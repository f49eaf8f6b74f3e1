package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "chardetcompat/internal/platform/errors"
	"chardetcompat/internal/platform/logger"
	pnet "chardetcompat/internal/platform/net"
	phttp "chardetcompat/internal/platform/net/http"
)

// RecoverJSON converts panics into the standard JSON error envelope (500) and logs the stack
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
