// Package responsewriter wraps http.ResponseWriter so middleware can observe
// the status code and body size after a handler runs.
package responsewriter

import "net/http"

// ResponseWriter records the status code and byte count of a response.
// The zero value is not usable; construct one with Wrap.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
	wrote   bool
}

// Wrap returns a recording wrapper around w. Until the handler writes a
// header the recorded status is 200, matching net/http's implicit default.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code written; later calls are ignored
// the same way net/http ignores them.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.wrote {
		return
	}
	w.status = statusCode
	w.wrote = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// StatusCode returns the recorded status, or 200 if none was written.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten returns the number of body bytes written so far.
func (w *ResponseWriter) BytesWritten() int { return w.written }

// Flush forwards to the underlying writer when it supports flushing.
func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
