package server

import "net/http"

// statusRecorder captures the status and body size of a response so the
// metrics and logging middleware can report them. Only the first
// WriteHeader reaches the client.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

// recordResponse wraps w, or returns w itself when it already records.
// The middleware chain wraps once no matter how many layers ask.
func recordResponse(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *statusRecorder) WriteHeader(status int) {
	if rec.wroteHeader {
		return
	}
	rec.status = status
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// Status returns the status sent to the client, 200 if none was written.
func (rec *statusRecorder) Status() int {
	return rec.status
}

// Bytes returns the number of body bytes written.
func (rec *statusRecorder) Bytes() int64 {
	return rec.bytes
}
