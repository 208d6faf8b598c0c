package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vacation-planner-backend/config"
	"vacation-planner-backend/models"
)

func GetToken(userID, name, companyID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":    name,
		"sub":     userID,
		"company": companyID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// GetRefreshToken issues a refresh token carrying a fresh jti so the auth
// handler can track rotation and revocation in the database.
func GetRefreshToken(userID, name string) (tokenString, jti string, expiresAt time.Time, err error) {
	jti = uuid.NewString()
	expiresAt = time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec))
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"jti":  jti,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(config.Conf.Auth.JWTSecret))
	return tokenString, jti, expiresAt, err
}

// ParseRefreshToken validates the signature and expiry and returns the
// subject and jti claims.
func ParseRefreshToken(tokenString string) (userID, jti string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	id, _ := claims["jti"].(string)
	return sub, id, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
