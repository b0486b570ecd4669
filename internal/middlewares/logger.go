package middlewares

import (
	"net/http"
	"time"

	"github.com/MarkMiraclee/vvclient/internal/metrics"
	"github.com/sirupsen/logrus"
)

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// Logger logs every UI request and counts it by method and status class.
func Logger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// a handler that only writes a body answers 200
			responseData := &responseData{status: http.StatusOK}
			lw := loggingResponseWriter{
				ResponseWriter: w,
				responseData:   responseData,
			}

			h.ServeHTTP(&lw, r)

			metrics.UIRequestsTotal.WithLabelValues(r.Method, metrics.Status(responseData.status)).Inc()
			log.WithFields(logrus.Fields{
				"uri":      r.RequestURI,
				"method":   r.Method,
				"status":   responseData.status,
				"duration": time.Since(start),
				"size":     responseData.size,
			}).Debug("ui request completed")
		})
	}
}
