package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mowasalat/assistant-api/internal/adapter/api/dto"
	"github.com/mowasalat/assistant-api/internal/adapter/repository"
	"github.com/mowasalat/assistant-api/internal/domain/user"
	"github.com/mowasalat/assistant-api/pkg/auth"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	userRepository user.Repository
	jwtService     *auth.JWTService
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepository user.Repository, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Token autentica um usuário e retorna um token de acesso
// @Summary Autentica um usuário
// @Description Verifica as credenciais enviadas como formulário e retorna um token bearer
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Nome de usuário"
// @Param password formData string true "Senha"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /token [post]
func (c *AuthController) Token(ctx *gin.Context) {
	var request dto.TokenRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Buscar o usuário pelo nome de usuário
	u, err := c.userRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	// Verificar a senha
	if !u.CheckPassword(request.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Usuário ou senha incorretos"))
		return
	}

	// Gerar o token de acesso
	token, err := c.jwtService.GenerateToken(u.Username)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
