package captcha_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/registration-service/internal/captcha"
	"github.com/spec-kit/registration-service/internal/config"
)

func newVerifier(url string) *captcha.HTTPVerifier {
	cfg := config.CaptchaConfig{VerifyURL: url, Secret: "provider-secret", TimeoutSeconds: 2}
	return captcha.NewHTTPVerifier(cfg, zap.NewNop())
}

func TestVerifyAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "provider-secret", r.Form.Get("secret"))
		require.Equal(t, "client-token", r.Form.Get("response"))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	ok, err := newVerifier(srv.URL).Verify(context.Background(), "client-token")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	ok, err := newVerifier(srv.URL).Verify(context.Background(), "bad-token")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRetriesOnceOnTransportError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`not json`))
			return
		}
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	ok, err := newVerifier(srv.URL).Verify(context.Background(), "client-token")
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 2, calls.Load())
}

func TestVerifySurfacesPersistentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // every attempt fails to connect

	ok, err := newVerifier(srv.URL).Verify(context.Background(), "client-token")
	require.Error(t, err)
	require.False(t, ok)
}

func TestReplayGuardWithoutRedisDegradesOpen(t *testing.T) {
	guard := captcha.NewReplayGuard(nil, zap.NewNop())
	require.True(t, guard.Consume(context.Background(), "client-token"))
	require.True(t, guard.Consume(context.Background(), "client-token"))
}
