package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a logged error and, when nothing has
// been sent yet, a bare 500 problem response. The panic value and stack only
// go to the log. http.ErrAbortHandler is re-raised so
// net/http can abort the connection quietly.
//
// Recovery sits in front of RequestID, so the request ID is read back from
// the response header that RequestID sets.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := recordStatus(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.Bool("response_committed", rw.committed()),
					slog.String("stack", string(debug.Stack())),
				)
				if !rw.committed() {
					dto.WriteStatus(rw, r, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
