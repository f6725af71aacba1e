package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity describes the principal behind a JWT presented to Vault.
//
// It is informational only: claims are read without verifying the
// signature, since Vault performs the verification during login.
type Identity struct {
	Subject        string
	Issuer         string
	Audience       []string
	Namespace      string
	ServiceAccount string
	ExpiresAt      time.Time
	IssuedAt       time.Time

	// Claims contains the raw claims from the token.
	Claims map[string]any
}

// IsExpired reports whether the token's exp claim is in the past.
func (id *Identity) IsExpired() bool {
	if id == nil || id.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(id.ExpiresAt)
}

// IdentityFromJWT decodes the claims of token without verifying it.
func IdentityFromJWT(token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("auth: decode service account token: %w", err)
	}

	id := &Identity{Claims: make(map[string]any, len(claims))}
	for k, v := range claims {
		id.Claims[k] = v
	}

	id.Subject, _ = claims.GetSubject()
	id.Issuer, _ = claims.GetIssuer()
	if aud, err := claims.GetAudience(); err == nil {
		id.Audience = aud
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		id.IssuedAt = iat.Time
	}

	// Projected tokens nest the pod identity under "kubernetes.io"; legacy
	// secret-based tokens use flat keys.
	if k8s, ok := claims["kubernetes.io"].(map[string]any); ok {
		id.Namespace, _ = k8s["namespace"].(string)
		if sa, ok := k8s["serviceaccount"].(map[string]any); ok {
			id.ServiceAccount, _ = sa["name"].(string)
		}
	} else {
		id.Namespace, _ = claims["kubernetes.io/serviceaccount/namespace"].(string)
		id.ServiceAccount, _ = claims["kubernetes.io/serviceaccount/service-account.name"].(string)
	}

	return id, nil
}
