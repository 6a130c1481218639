package auth

import (
	"errors"
	"time"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey    []byte
	issuer       string
	signInTTL    time.Duration
	elevationTTL time.Duration
	now          func() time.Time
}

// NewJWTService creates a new JWT service. One secret signs every token.
func NewJWTService(secretKey, issuer string, signInTTL, elevationTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:    []byte(secretKey),
		issuer:       issuer,
		signInTTL:    signInTTL,
		elevationTTL: elevationTTL,
		now:          time.Now,
	}
}

// IssueSignInToken implements domain.TokenService
func (j *JWTServiceImpl) IssueSignInToken(userID uint, role domain.Role, businessID *uint) (string, error) {
	return j.issue(userID, role, businessID, j.signInTTL)
}

// IssueElevationToken is minted after business registration and carries the new role
func (j *JWTServiceImpl) IssueElevationToken(userID uint, role domain.Role, businessID *uint) (string, error) {
	return j.issue(userID, role, businessID, j.elevationTTL)
}

func (j *JWTServiceImpl) issue(userID uint, role domain.Role, businessID *uint, ttl time.Duration) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"id":   userID,
		"role": string(role),
		"iss":  j.issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"jti":  uuid.NewString(),
	}
	if businessID != nil {
		claims["business_id"] = *businessID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateToken(tokenString string) (*domain.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	tokenClaims := &domain.TokenClaims{
		UserID:    uint(userID),
		Role:      domain.Role(role),
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}
	if jti, ok := claims["jti"].(string); ok {
		tokenClaims.TokenID = jti
	}
	if businessID, ok := claims["business_id"].(float64); ok {
		id := uint(businessID)
		tokenClaims.BusinessID = &id
	}

	return tokenClaims, nil
}
