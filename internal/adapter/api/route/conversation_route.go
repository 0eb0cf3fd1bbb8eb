package route

import (
	"github.com/gin-gonic/gin"

	"github.com/mowasalat/assistant-api/internal/adapter/api/controller"
	"github.com/mowasalat/assistant-api/internal/domain/user"
	"github.com/mowasalat/assistant-api/pkg/auth"
)

// SetupConversationRoutes configura as rotas para o módulo de conversas.
// Todas exigem token bearer válido cujo usuário ainda exista.
func SetupConversationRoutes(router *gin.Engine, jwtService *auth.JWTService, userRepository user.Repository, conversationController *controller.ConversationController) {
	protected := router.Group("")
	protected.Use(auth.JWTAuthMiddleware(jwtService, userRepository))
	{
		protected.POST("/create_conversation/", conversationController.Create)
		protected.POST("/create_message/:conversation_id/", conversationController.CreateMessage)
		protected.GET("/conversations/", conversationController.List)
		protected.GET("/conversations/:conversation_id/messages/", conversationController.ListMessages)
		protected.DELETE("/delete_conversation/:conversation_id", conversationController.Delete)
		protected.PUT("/conversations/:conversation_id/messages/:message_id/feedback", conversationController.UpdateFeedback)
	}
}
