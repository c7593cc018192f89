package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/registration-service/internal/config"
)

// Verifier checks a client-supplied captcha token with an external provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// HTTPVerifier calls a reCAPTCHA-style siteverify endpoint.
type HTTPVerifier struct {
	verifyURL string
	secret    string
	client    *http.Client
	logger    *zap.Logger
}

// NewHTTPVerifier builds a verifier from configuration. The timeout bounds
// each attempt, not the sum of attempts.
func NewHTTPVerifier(cfg config.CaptchaConfig, logger *zap.Logger) *HTTPVerifier {
	return &HTTPVerifier{
		verifyURL: cfg.VerifyURL,
		secret:    cfg.Secret,
		client:    &http.Client{Timeout: cfg.Timeout()},
		logger:    logger,
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token to the provider. A transport error is retried once
// before surfacing; a provider "success: false" is not retried.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) (bool, error) {
	ok, err := v.attempt(ctx, token)
	if err == nil {
		return ok, nil
	}

	v.logger.Warn("captcha verification attempt failed, retrying once", zap.Error(err))
	return v.attempt(ctx, token)
}

func (v *HTTPVerifier) attempt(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close() //nolint:errcheck

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}

	if !body.Success {
		v.logger.Info("captcha rejected by provider", zap.Strings("error_codes", body.ErrorCodes))
	}
	return body.Success, nil
}
