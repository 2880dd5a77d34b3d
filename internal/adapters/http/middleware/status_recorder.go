package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced.
// Recovery, OpenTelemetry and Logging each wrap the writer with one.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// Status returns the status sent to the client, 200 when the handler wrote a
// body without calling WriteHeader, or 0 when nothing was written.
func (sr *statusRecorder) Status() int {
	return sr.status
}

// Committed reports whether headers have gone out.
func (sr *statusRecorder) Committed() bool {
	return sr.status != 0
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.Committed() {
		return
	}
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.Committed() {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController, which the
// event stream handler uses to flush and to lift the write deadline.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// statusOrOK maps "nothing written" to the 200 net/http sends on return.
func statusOrOK(sr *statusRecorder) int {
	if s := sr.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
