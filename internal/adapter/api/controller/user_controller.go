package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mowasalat/assistant-api/internal/adapter/api/dto"
	"github.com/mowasalat/assistant-api/internal/adapter/repository"
	"github.com/mowasalat/assistant-api/internal/domain/user"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	userRepository user.Repository
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepository user.Repository) *UserController {
	return &UserController{
		userRepository: userRepository,
	}
}

// Create cria um novo usuário
// @Summary Cria um novo usuário
// @Description Registra um usuário com nome único e senha; a senha é armazenada com hash
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /create_user/ [post]
func (c *UserController) Create(ctx *gin.Context) {
	var request dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u := user.New(request.Username)
	if err := u.SetPassword(request.Password); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar senha", err.Error()))
		return
	}

	if err := c.userRepository.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Nome de usuário já registrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.UserResponse{
		Username: u.Username,
	})
}
