package tokens

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"membership/internal/membership/models"
	id "membership/pkg/domain"
	dErrors "membership/pkg/domain-errors"
	"membership/pkg/requestcontext"
)

// Token scopes. An update token also grants read access.
const (
	ScopeAccess = "access"
	ScopeUpdate = "update"
)

// Claims represents the JWT claims of an application token.
type Claims struct {
	ApplicationID string `json:"application_id"`
	Scope         string `json:"scope"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed application tokens, so nothing has to be
// stored per application.
type JWTService struct {
	signingKey []byte
	issuer     string
	accessTTL  time.Duration
	updateTTL  time.Duration
}

func NewJWTService(signingKey string, issuer string, accessTTL, updateTTL time.Duration) (*JWTService, error) {
	if signingKey == "" {
		return nil, dErrors.New(dErrors.CodeInternal, "token signing key is required")
	}
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		accessTTL:  accessTTL,
		updateTTL:  updateTTL,
	}, nil
}

// GetTokens issues a fresh access/update pair for applicationID.
func (s *JWTService) GetTokens(ctx context.Context, applicationID id.ApplicationID) (models.Tokens, error) {
	if applicationID.IsNil() {
		return models.Tokens{}, dErrors.New(dErrors.CodeInvalidInput, "application id is required")
	}
	now := requestcontext.Now(ctx)

	access, err := s.sign(applicationID, ScopeAccess, now, s.accessTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	update, err := s.sign(applicationID, ScopeUpdate, now, s.updateTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: access, UpdateToken: update}, nil
}

func (s *JWTService) sign(applicationID id.ApplicationID, scope string, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ApplicationID: applicationID.String(),
		Scope:         scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   applicationID.String(),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign "+scope+" token")
	}
	return signed, nil
}

// ValidateToken verifies signature, issuer and expiry of tokenString.
func (s *JWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	now := requestcontext.Now(ctx)
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// CanAccessApplication accepts access and update tokens of applicationID.
func (s *JWTService) CanAccessApplication(ctx context.Context, applicationID id.ApplicationID, accessToken string) bool {
	claims, err := s.ValidateToken(ctx, accessToken)
	if err != nil {
		return false
	}
	return claims.ApplicationID == applicationID.String() &&
		(claims.Scope == ScopeAccess || claims.Scope == ScopeUpdate)
}

// CanModifyApplication accepts only update tokens of applicationID.
func (s *JWTService) CanModifyApplication(ctx context.Context, applicationID id.ApplicationID, updateToken string) bool {
	claims, err := s.ValidateToken(ctx, updateToken)
	if err != nil {
		return false
	}
	return claims.ApplicationID == applicationID.String() && claims.Scope == ScopeUpdate
}
