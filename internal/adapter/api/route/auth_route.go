package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mowasalat/assistant-api/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas para o módulo de autenticação
func SetupAuthRoutes(router *gin.Engine, authController *controller.AuthController) {
	// Login no formato de formulário OAuth2; não requer token
	router.POST("/token", authController.Token)
}
