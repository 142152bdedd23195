package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/models"
	"github.com/rs/zerolog"
	"resty.dev/v3"
)

// TokenResponse is the provider's token endpoint response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	IDToken     string `json:"id_token"`
}

// ProviderClient drives the OIDC authorization-code flow against an external
// identity provider: authorization redirect, code exchange, ID-token
// validation. It owns no session state; the caller binds the nonce to the
// session and passes it back for verification.
type ProviderClient struct {
	cfg      config.OIDCConfig
	client   *resty.Client
	verifier IDTokenVerifier
	log      zerolog.Logger
}

// NewProviderClient creates an OIDC client with a bounded exchange timeout
func NewProviderClient(cfg config.OIDCConfig, verifier IDTokenVerifier, log zerolog.Logger) *ProviderClient {
	client := resty.New().
		SetTimeout(cfg.ExchangeTimeout)

	return &ProviderClient{
		cfg:      cfg,
		client:   client,
		verifier: verifier,
		log:      log.With().Str("component", "oidc").Logger(),
	}
}

// Close releases the underlying HTTP client
func (p *ProviderClient) Close() error {
	return p.client.Close()
}

// AuthCodeURL builds the provider authorization redirect for login initiation.
// The nonce binds the request to the session; the provider echoes it back
// inside the ID token.
func (p *ProviderClient) AuthCodeURL(nonce string) (string, error) {
	authURL, err := url.Parse(p.cfg.AuthURL)
	if err != nil {
		return "", fmt.Errorf("invalid auth endpoint: %w", err)
	}

	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", p.cfg.ClientID)
	query.Set("redirect_uri", p.cfg.RedirectURL)
	query.Set("scope", strings.Join(p.cfg.Scopes, " "))
	query.Set("nonce", nonce)
	authURL.RawQuery = query.Encode()

	return authURL.String(), nil
}

// Exchange trades an authorization code for tokens via a server-to-server
// call. Network failure, timeout, or a non-2xx response is an authentication
// failure; the flow is not retried.
func (p *ProviderClient) Exchange(ctx context.Context, code string) (*TokenResponse, error) {
	var token TokenResponse

	resp, err := p.client.R().
		WithContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          code,
			"redirect_uri":  p.cfg.RedirectURL,
			"client_id":     p.cfg.ClientID,
			"client_secret": p.cfg.ClientSecret,
		}).
		SetResult(&token).
		Post(p.cfg.TokenURL)
	if err != nil {
		p.log.Warn().Err(err).Msg("Token exchange request failed")
		return nil, fmt.Errorf("%w: token exchange: %v", models.ErrAuthenticationFailed, err)
	}
	if resp.IsError() {
		p.log.Warn().Int("status", resp.StatusCode()).Msg("Token endpoint returned error status")
		return nil, fmt.Errorf("%w: token endpoint status %d", models.ErrAuthenticationFailed, resp.StatusCode())
	}
	if token.IDToken == "" {
		return nil, fmt.Errorf("%w: token response missing id_token", models.ErrAuthenticationFailed)
	}

	return &token, nil
}

// Authenticate completes the flow: exchanges the code and validates the
// returned ID token against the session's nonce. It never yields an identity
// from an unvalidated token.
func (p *ProviderClient) Authenticate(ctx context.Context, code, nonce string) (*models.User, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", models.ErrAuthenticationFailed)
	}
	if nonce == "" {
		// No pending authorization for this session; the callback is a
		// protocol violation, not a provider error.
		return nil, fmt.Errorf("%w: no pending authorization nonce", models.ErrAuthenticationFailed)
	}

	token, err := p.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := p.verifier.Verify(token.IDToken, nonce)
	if err != nil {
		p.log.Warn().Err(err).Msg("ID token validation failed")
		return nil, err
	}

	p.log.Info().Str("email", user.Email).Msg("User authenticated")
	return user, nil
}
