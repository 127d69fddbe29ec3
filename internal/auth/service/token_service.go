package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/auth/domain"
	apperrors "github.com/lifebook/lifebook/internal/errors"
)

// sessionClaims embeds the registered JWT claims plus the subject's admin flag.
// The subject's user ID travels in the standard "sub" claim.
type sessionClaims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
type tokenService struct {
	signingSecret []byte
	ttl           time.Duration
}

// NewTokenService creates a new TokenService. Tokens are signed with the given
// secret and expire after ttl. A zero ttl issues already-expired tokens, which
// is only useful in tests.
func NewTokenService(signingSecret []byte, ttl time.Duration) TokenService {
	return &tokenService{
		signingSecret: signingSecret,
		ttl:           ttl,
	}
}

// Sign issues a signed token for the subject.
func (t *tokenService) Sign(userID uuid.UUID, isAdmin bool) (domain.Session, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		IsAdmin: isAdmin,
	})

	signed, err := token.SignedString(t.signingSecret)
	if err != nil {
		return domain.Session{}, apperrors.Wrap(err, "failed to sign session token")
	}

	return domain.Session{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyAndDecode checks the token signature and expiry and returns the
// embedded claims. All failure modes collapse into domain.ErrInvalidToken.
func (t *tokenService) VerifyAndDecode(tokenString string) (domain.TokenClaims, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.signingSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}

	return domain.TokenClaims{
		UserID:    userID,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
