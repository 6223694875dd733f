package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"user-api/pkg/config"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token structure or signature is not valid")
)

type JwtGenerator interface {
	GenerateAccessToken(userId, email, role string) (string, error)
	GenerateRefreshToken(userId string) (string, error)
	VerifyToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	secretKey       []byte
	accessTokenTtl  time.Duration
	refreshTokenTtl time.Duration
}

// NewJwtGenerator signs and verifies with a single process-wide symmetric
// secret. Rotating the secret invalidates every outstanding token.
func NewJwtGenerator(jwtConfig config.JwtConfig) (JwtGenerator, error) {
	if jwtConfig.SecretKey == "" {
		return nil, errors.New("jwt secret key is empty")
	}

	return &jwtGenerator{
		secretKey:       []byte(jwtConfig.SecretKey),
		accessTokenTtl:  jwtConfig.AccessTokenTtl,
		refreshTokenTtl: jwtConfig.RefreshTokenTtl,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateAccessToken(userId, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userId,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtGenerator.accessTokenTtl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtGenerator.secretKey)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) GenerateRefreshToken(userId string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userId,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtGenerator.refreshTokenTtl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtGenerator.secretKey)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) VerifyToken(rawJwtToken string) (*Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}

		return jwtGenerator.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrTokenMalformed
	}

	return &claims, nil
}
