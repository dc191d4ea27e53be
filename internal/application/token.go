package application

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DecisionClaims is the payload of an emailed action link. Signature
// validity alone is never enough to act: the jti must still resolve to an
// unused server-side record.
type DecisionClaims struct {
	TokenID       string
	ApplicationID uint64
	Action        Action
	OwnerUserID   uint64
}

// TokenSigner signs and parses decision-link JWTs with a shared secret.
type TokenSigner struct {
	secret []byte
}

func NewTokenSigner(secret string) *TokenSigner {
	return &TokenSigner{secret: []byte(secret)}
}

func (s *TokenSigner) Sign(c DecisionClaims) (string, error) {
	claims := jwt.MapClaims{
		"jti": c.TokenID,
		"app": c.ApplicationID,
		"act": string(c.Action),
		"own": c.OwnerUserID,
		"iat": time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse verifies the signature and decodes the payload. Any failure maps to
// ErrInvalidToken upstream; the caller still has to match the claims against
// the request and consume the persisted record.
func (s *TokenSigner) Parse(raw string) (DecisionClaims, error) {
	t, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return DecisionClaims{}, errors.New("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return DecisionClaims{}, errors.New("invalid claims")
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return DecisionClaims{}, errors.New("missing jti")
	}
	// jwt MapClaims numbers are float64
	appID, ok := claims["app"].(float64)
	if !ok {
		return DecisionClaims{}, errors.New("missing app")
	}
	actStr, ok := claims["act"].(string)
	if !ok {
		return DecisionClaims{}, errors.New("missing act")
	}
	act, err := ParseAction(actStr)
	if err != nil {
		return DecisionClaims{}, err
	}
	ownID, ok := claims["own"].(float64)
	if !ok {
		return DecisionClaims{}, errors.New("missing own")
	}

	return DecisionClaims{
		TokenID:       jti,
		ApplicationID: uint64(appID),
		Action:        act,
		OwnerUserID:   uint64(ownID),
	}, nil
}
