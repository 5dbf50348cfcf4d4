// Package hog logs rendering requests and recovers from panics using zerolog and a minimum of spam.
package hog

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// An Inject extends a log context, such as with a request ID.
type Inject func(zerolog.Context) zerolog.Context

// From returns the logger from the provided context with any injects applied.  Middleware puts the request logger
// in the context, using the same context key as zerolog's Ctx and WithContext.
func From(ctx context.Context, injects ...Inject) *zerolog.Logger {
	log := zerolog.Ctx(ctx)
	if len(injects) == 0 {
		return log
	}
	z := log.With()
	for _, inject := range injects {
		z = inject(z)
	}
	next := z.Logger()
	return &next
}

// RequestID returns an Inject that adds a fresh ULID as request_id.
func RequestID() Inject {
	return func(z zerolog.Context) zerolog.Context {
		return z.Str(`request_id`, ulid.Make().String())
	}
}

// Middleware returns a middleware that logs requests and recovers from panics.  See For for the fields added to the
// log context.  Fields logged after the request completes:
//
//   - status: the HTTP status code of the response
//   - wrote: the number of bytes written to the response
//   - took: the number of milliseconds the request took to process
//   - panic: the panic message, if the request panicked
//   - stack: the stack trace, if the request panicked
//
// A request that panics before writing anything gets a 500 response.
func Middleware(injects ...Inject) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			log := For(r, injects...)
			r = r.WithContext(log.WithContext(r.Context()))
			defer logResponse(log, ww, start)
			next.ServeHTTP(ww, r)
		})
	}
}

// For returns a logger for the provided request with the injects applied and the following fields:
//
//   - remote_addr: the remote address of the request
//   - method: the HTTP method of the request
//   - path: the path of the request
func For(r *http.Request, injects ...Inject) *zerolog.Logger {
	z := zerolog.Ctx(r.Context()).With().
		Str(`remote_addr`, r.RemoteAddr).
		Str(`method`, r.Method).
		Str(`path`, r.URL.Path)
	for _, inject := range injects {
		z = inject(z)
	}
	log := z.Logger()
	return &log
}

func logResponse(log *zerolog.Logger, ww middleware.WrapResponseWriter, start time.Time) {
	took := time.Since(start).Milliseconds()
	if e := recover(); e != nil {
		if e == http.ErrAbortHandler {
			panic(e) // rethrow, http will handle it.
		}
		if ww.Status() == 0 {
			http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		evt := log.WithLevel(zerolog.PanicLevel)
		evt = addStackTrace(evt, 4)
		evt.Str(`panic`, fmt.Sprint(e)).Int64(`took`, took).Msg(``)
		return
	}
	status := ww.Status()
	if status == 0 {
		status = http.StatusOK
	}
	var evt *zerolog.Event
	switch {
	case status >= 500:
		evt = log.Error()
	case status >= 400:
		evt = log.Warn()
	default:
		evt = log.Info()
	}
	evt.Int(`status`, status).Int(`wrote`, ww.BytesWritten()).Int64(`took`, took).Msg(``)
}

func addStackTrace(evt *zerolog.Event, skip int) *zerolog.Event {
	var calls [64]uintptr
	n := runtime.Callers(skip+1, calls[:])
	frames := runtime.CallersFrames(calls[:n])
	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, fmt.Sprintf(`%v:%v`, frame.Function, frame.Line))
		if !more {
			break
		}
	}
	return evt.Strs(`stack`, stack)
}
