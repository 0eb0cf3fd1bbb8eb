package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mowasalat/assistant-api/internal/adapter/api/dto"
	"github.com/mowasalat/assistant-api/internal/adapter/repository"
	"github.com/mowasalat/assistant-api/internal/domain/user"
)

// JWTAuthMiddleware cria um middleware para autenticação JWT. Além de validar
// o token, resolve o sujeito no diretório de usuários: um token válido cujo
// usuário não existe mais é rejeitado com 401. As dependências são injetadas
// na inicialização; o middleware não lê configuração ambiente.
func JWTAuthMiddleware(jwtService *JWTService, userRepository user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Obter o token do cabeçalho Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		// Verificar o formato "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		// Validar o token
		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		// Resolver o sujeito no diretório de usuários
		if _, err := userRepository.FindByUsername(c, claims.Subject); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
					http.StatusUnauthorized,
					"Credenciais inválidas",
					"O usuário do token não existe",
				))
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Erro ao validar credenciais",
				err.Error(),
			))
			return
		}

		// Armazenar o nome de usuário no contexto
		c.Set("username", claims.Subject)

		c.Next()
	}
}

// GetCurrentUsername obtém o nome de usuário autenticado do contexto
func GetCurrentUsername(c *gin.Context) string {
	username, _ := c.Get("username")
	usernameStr, _ := username.(string)
	return usernameStr
}
