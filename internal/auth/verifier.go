package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/news-comments-api/internal/models"
)

// IDTokenVerifier validates a raw ID token and the nonce binding, yielding
// the verified identity. Behind an interface so tests can inject fakes.
type IDTokenVerifier interface {
	Verify(rawToken, expectedNonce string) (*models.User, error)
}

// IDTokenClaims are the claims the service consumes from the ID token
type IDTokenClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Nonce string   `json:"nonce"`
}

// hs256Verifier validates tokens signed with the client secret. OIDC permits
// symmetric ID-token signing keyed on the client secret, which keeps the
// trust anchor to credentials already held in configuration.
type hs256Verifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewHS256Verifier creates a verifier for HS256-signed ID tokens
func NewHS256Verifier(clientSecret, issuer, clientID string) IDTokenVerifier {
	return &hs256Verifier{
		secret:   []byte(clientSecret),
		issuer:   issuer,
		audience: clientID,
	}
}

func (v *hs256Verifier) Verify(rawToken, expectedNonce string) (*models.User, error) {
	claims := &IDTokenClaims{}

	token, err := jwt.ParseWithClaims(rawToken, claims,
		func(t *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrAuthenticationFailed, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", models.ErrAuthenticationFailed)
	}

	// The nonce binds the token to the authorization request that this
	// session initiated; a mismatch means replay or injection.
	if claims.Nonce == "" || claims.Nonce != expectedNonce {
		return nil, fmt.Errorf("%w: nonce mismatch", models.ErrAuthenticationFailed)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: token missing email claim", models.ErrAuthenticationFailed)
	}

	return &models.User{
		Email: claims.Email,
		Name:  claims.Name,
		Roles: claims.Roles,
	}, nil
}
