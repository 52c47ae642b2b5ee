package middleware

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/agecalc/internal/adapters/http/dto"
	"github.com/jsamuelsen11/agecalc/internal/platform/logging"
)

// Timeout bounds each request to d. The handler runs on its own goroutine and
// writes into a buffer. When it finishes in time the buffer is replayed;
// otherwise the buffer is dropped and a 504 problem is written. A client
// disconnect before either outcome writes nothing.
//
// Panics raised by the handler are re-raised on the serving goroutine so
// Recovery still sees them.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
						return
					}
					close(done)
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				buf.replay(w)
			case <-ctx.Done():
				buf.abandon()
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return
				}
				logging.FromContext(ctx).WarnContext(ctx, "request timed out",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				dto.WriteProblem(w, r, context.DeadlineExceeded)
			}
		})
	}
}

// bufferedWriter collects a handler's response until Timeout decides whether
// to replay it. Writes after abandon fail with http.ErrHandlerTimeout.
type bufferedWriter struct {
	header http.Header

	mu        sync.Mutex
	status    int
	body      []byte
	abandoned bool
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status == 0 && !b.abandoned {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedWriter) abandon() {
	b.mu.Lock()
	b.abandoned = true
	b.mu.Unlock()
}

// replay is only called after the handler goroutine has returned.
func (b *bufferedWriter) replay(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
