package jwt

import (
	"My-Supps-Backend/domain"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gofiber/fiber/v2/log"
	"time"
)

type (
	JWTService interface {
		GenerateTokenUser(userId string, role string) string
		GenerateTokenUserWithTTL(userId string, role string, ttl time.Duration) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

const defaultTokenTTL = 120 * time.Minute

// NewJWTService verifies bearer tokens minted by the identity provider. The
// same secret lets the CLI issue tokens for local testing. With an empty
// secret every token is rejected and none can be issued.
func NewJWTService(secretKey, issuer string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

func (j *jwtService) GenerateTokenUser(userId string, role string) string {
	tx, err := j.GenerateTokenUserWithTTL(userId, role, defaultTokenTTL)
	if err != nil {
		log.Error(err)
	}
	return tx
}

func (j *jwtService) GenerateTokenUserWithTTL(userId string, role string, ttl time.Duration) (string, error) {
	if j.secretKey == "" {
		return "", domain.ErrMissingSecret
	}
	now := time.Now()
	claims := jwtUserClaim{
		userId,
		role,
		jwt.RegisteredClaims{
			Subject:   userId,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	if j.secretKey == "" {
		return nil, domain.ErrMissingSecret
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	if j.issuer != "" && claims.Issuer != j.issuer {
		return "", "", domain.ErrTokenInvalid
	}

	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}
	if id == "" {
		return "", "", domain.ErrTokenInvalid
	}
	return id, claims.Role, nil
}
