package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mowasalat/assistant-api/internal/adapter/api/controller"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.Engine, userController *controller.UserController) {
	// Criação de usuário não requer autenticação
	router.POST("/create_user/", userController.Create)
}
