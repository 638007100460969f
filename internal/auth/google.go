package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/zitadel/oidc/v3/pkg/client/rp"
	"github.com/zitadel/oidc/v3/pkg/oidc"
)

const (
	googleIssuer  = "https://accounts.google.com"
	googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
)

// ErrGoogleNotConfigured is returned when no Google client id was configured.
var ErrGoogleNotConfigured = errors.New("google sign-in is not configured")

// GoogleIdentity is the subset of ID token claims used to resolve a user.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

// GoogleVerifier checks Google ID tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	verifier *rp.IDTokenVerifier
}

// NewGoogleVerifier verifies tokens issued by Google for clientID against Google's published keys.
func NewGoogleVerifier(clientID string, client *http.Client) GoogleVerifier {
	if clientID == "" {
		return nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	keys := rp.NewRemoteKeySet(client, googleJWKSURL)
	return &googleVerifier{verifier: rp.NewIDTokenVerifier(googleIssuer, clientID, keys)}
}

func (g *googleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	if g == nil || g.verifier == nil {
		return nil, ErrGoogleNotConfigured
	}
	claims, err := rp.VerifyIDToken[*oidc.IDTokenClaims](ctx, idToken, g.verifier)
	if err != nil {
		return nil, err
	}
	return &GoogleIdentity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}
