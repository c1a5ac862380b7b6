package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mlima3022/Financas/config"
	"github.com/mlima3022/Financas/internal/domain/user"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type JwtService struct {
	secret      []byte
	expiration  time.Duration
	UserService *user.Service
}

type Claims struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func NewJwtService(cfg config.JWTConfig, userSvc *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, appErrors.NewAuthError("JWT_CONFIG_MISSING", "JWT_SECRET não configurado")
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		expiration:  cfg.Expiration,
		UserService: userSvc,
	}, nil
}

func (s *JwtService) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserId: u.Id.String(),
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) ValidateToken(ctx context.Context, tokenString string) (*user.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.NewAuthError("TOKEN_INVALID", "Método de assinatura inválido")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado").WithError(err)
	}

	userID, err := pkg.ParseULID(claims.UserId)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token com identificador inválido")
	}

	entity, err := s.UserService.GetByID(ctx, userID)
	if err != nil {
		return nil, appErrors.ErrUnauthorized.WithError(err)
	}
	return entity, nil
}

// AuthMiddleware valida o bearer token e injeta o usuário autenticado
// no contexto da requisição.
func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Token de autenticação não fornecido")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Formato do token inválido. Use: Bearer <token>")
			return
		}

		entity, err := jwtSvc.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		c.Set("user_id", entity.Id.String())
		c.Set("user", entity)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   "UNAUTHORIZED",
		"message": message,
	})
	c.Abort()
}

// AuthenticatedUserID recupera o id do usuário colocado no contexto
// pelo AuthMiddleware.
func AuthenticatedUserID(c *gin.Context) (ulid.ULID, error) {
	raw, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}
	id, ok := raw.(string)
	if !ok {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}
	return pkg.ParseULID(id)
}
