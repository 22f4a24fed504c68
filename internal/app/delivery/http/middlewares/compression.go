package middlewares

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"go.uber.org/zap"
)

const encodingBrotli = "br"

type brotliResponseWriter struct {
	http.ResponseWriter
	writer      *brotli.Writer
	wroteHeader bool
	// passthrough is set for statuses that carry no body.
	passthrough bool
}

func (bw *brotliResponseWriter) WriteHeader(code int) {
	if !bw.wroteHeader {
		bw.wroteHeader = true
		if code == http.StatusNoContent || code == http.StatusNotModified {
			bw.passthrough = true
			bw.ResponseWriter.WriteHeader(code)
			return
		}
		bw.Header().Del("Content-Length")
		bw.Header().Set("Content-Encoding", encodingBrotli)
		bw.Header().Add("Vary", "Accept-Encoding")
	}
	bw.ResponseWriter.WriteHeader(code)
}

func (bw *brotliResponseWriter) Write(b []byte) (int, error) {
	if !bw.wroteHeader {
		bw.WriteHeader(http.StatusOK)
	}
	if bw.passthrough {
		return bw.ResponseWriter.Write(b)
	}
	return bw.writer.Write(b)
}

// Compress brotli-encodes responses for clients that advertise "br" in
// Accept-Encoding. Other clients get the plain body.
func (m *Middlewares) Compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsBrotli(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		bw := &brotliResponseWriter{
			ResponseWriter: w,
			writer:         brotli.NewWriterLevel(w, brotli.DefaultCompression),
		}
		defer func() {
			if !bw.wroteHeader || bw.passthrough {
				return
			}
			if err := bw.writer.Close(); err != nil {
				m.Log.Warn("Failed to flush compressed response", zap.Error(err))
			}
		}()

		next.ServeHTTP(bw, r)
	})
}

func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(part, ";")
		if !strings.EqualFold(strings.TrimSpace(coding), encodingBrotli) {
			continue
		}
		switch strings.ReplaceAll(params, " ", "") {
		case "q=0", "q=0.0", "q=0.00", "q=0.000":
			return false
		}
		return true
	}
	return false
}
