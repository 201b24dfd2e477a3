package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get("X-Request-ID"))

		_, err := uuid.Parse(seen)
		require.NoError(t, err, "generated id should be a UUID")
	})

	t.Run("preserves inbound id", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "upstream-42", seen)
		require.Equal(t, "upstream-42", rec.Header().Get("X-Request-ID"))
	})

	t.Run("honors correlation header", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "corr-7")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "corr-7", seen)
	})

	t.Run("first header match wins", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "primary")
		req.Header.Set("X-Correlation-ID", "secondary")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "primary", seen)
	})
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, RequestIDFromContext(req.Context()))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extractor := RequestIDExtractor()

	t.Run("with id", func(t *testing.T) {
		t.Parallel()

		var attrKey, attrVal string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attr, ok := extractor(r.Context())
			require.True(t, ok)
			attrKey = attr.Key
			attrVal = attr.Value.String()
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-9")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, "request_id", attrKey)
		require.Equal(t, "req-9", attrVal)
	})

	t.Run("without id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := extractor(req.Context())
		require.False(t, ok)
	})
}
