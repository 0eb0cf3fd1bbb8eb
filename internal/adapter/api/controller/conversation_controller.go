package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mowasalat/assistant-api/internal/adapter/api/dto"
	"github.com/mowasalat/assistant-api/internal/adapter/repository"
	"github.com/mowasalat/assistant-api/internal/domain/conversation"
	"github.com/mowasalat/assistant-api/pkg/answer"
	"github.com/mowasalat/assistant-api/pkg/auth"
	"github.com/mowasalat/assistant-api/pkg/logger"
)

// ConversationController gerencia as requisições relacionadas a conversas e mensagens
type ConversationController struct {
	conversationRepository conversation.Repository
	provider               answer.Provider
	logger                 logger.Logger
}

// NewConversationController cria uma nova instância de ConversationController
func NewConversationController(conversationRepository conversation.Repository, provider answer.Provider, logger logger.Logger) *ConversationController {
	return &ConversationController{
		conversationRepository: conversationRepository,
		provider:               provider,
		logger:                 logger,
	}
}

// Create cria uma nova conversa para o usuário autenticado
// @Summary Cria uma nova conversa
// @Description Adiciona uma conversa vazia à lista do usuário autenticado
// @Tags conversations
// @Accept json
// @Produce json
// @Security Bearer
// @Param conversation body dto.CreateConversationRequest true "Título da conversa"
// @Success 200 {object} dto.ConversationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /create_conversation/ [post]
func (c *ConversationController) Create(ctx *gin.Context) {
	var request dto.CreateConversationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	username := auth.GetCurrentUsername(ctx)
	conv := conversation.NewConversation(request.Title)

	if err := c.conversationRepository.CreateConversation(ctx, username, conv); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar conversa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ConversationResponse{
		ConversationID: conv.ConversationID,
		Title:          conv.Title,
	})
}

// CreateMessage registra uma pergunta, obtém a resposta do provedor e anexa a mensagem
// @Summary Cria uma nova mensagem em uma conversa
// @Description Envia a pergunta ao provedor de respostas e anexa a troca pergunta/resposta à conversa
// @Tags conversations
// @Accept json
// @Produce json
// @Security Bearer
// @Param conversation_id path string true "ID da conversa"
// @Param message body dto.CreateMessageRequest true "Pergunta"
// @Success 200 {object} dto.CreateMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /create_message/{conversation_id}/ [post]
func (c *ConversationController) CreateMessage(ctx *gin.Context) {
	conversationID := ctx.Param("conversation_id")

	var request dto.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	question := conversation.Question{
		Type:    conversation.ContentType(request.Question.Type),
		Content: request.Question.Content,
	}
	if !question.Type.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Tipo de pergunta inválido", "Os tipos permitidos são TEXT, DICT e IMAGE"))
		return
	}

	username := auth.GetCurrentUsername(ctx)

	// Chamar o provedor de respostas de forma síncrona. Se a chamada falhar,
	// nada é persistido: a mensagem só é gravada com uma resposta válida.
	generated, err := c.provider.Generate(ctx, question)
	if err != nil {
		c.logger.Error("erro ao obter resposta do provedor", "conversation_id", conversationID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar resposta", err.Error()))
		return
	}

	if err := generated.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Resposta inválida do provedor", err.Error()))
		return
	}

	msg := conversation.NewMessage(question, generated)

	if err := c.conversationRepository.AppendMessage(ctx, username, conversationID, msg); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Conversa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao salvar mensagem", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateMessageResponse{
		MessageID: msg.MessageID,
		Answer:    msg.Answer,
	})
}

// List retorna as conversas do usuário autenticado
// @Summary Lista as conversas do usuário
// @Description Retorna a lista de conversas embutida no documento do usuário
// @Tags conversations
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ConversationListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/ [get]
func (c *ConversationController) List(ctx *gin.Context) {
	username := auth.GetCurrentUsername(ctx)

	convs, err := c.conversationRepository.ListConversations(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar conversas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ConversationListResponse{
		Conversations: convs,
	})
}

// ListMessages retorna as mensagens de uma conversa ordenadas por timestamp
// @Summary Lista as mensagens de uma conversa
// @Description Retorna as mensagens da conversa ordenadas por timestamp ascendente
// @Tags conversations
// @Produce json
// @Security Bearer
// @Param conversation_id path string true "ID da conversa"
// @Success 200 {object} dto.ConversationMessagesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/{conversation_id}/messages/ [get]
func (c *ConversationController) ListMessages(ctx *gin.Context) {
	conversationID := ctx.Param("conversation_id")
	username := auth.GetCurrentUsername(ctx)

	conv, err := c.conversationRepository.FindConversation(ctx, username, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Conversa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar conversa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ConversationMessagesResponse{
		ConversationID:  conv.ConversationID,
		LastInteraction: conv.LastInteraction,
		Messages:        conv.SortedMessages(),
	})
}

// Delete remove uma conversa do usuário autenticado
// @Summary Remove uma conversa
// @Description Remove a conversa com o id indicado da lista do usuário
// @Tags conversations
// @Produce json
// @Security Bearer
// @Param conversation_id path string true "ID da conversa"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /delete_conversation/{conversation_id} [delete]
func (c *ConversationController) Delete(ctx *gin.Context) {
	conversationID := ctx.Param("conversation_id")
	username := auth.GetCurrentUsername(ctx)

	if err := c.conversationRepository.DeleteConversation(ctx, username, conversationID); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Conversa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover conversa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Conversa removida com sucesso"))
}

// UpdateFeedback define o feedback de uma mensagem
// @Summary Atualiza o feedback de uma mensagem
// @Description Define o feedback (LIKE ou DISLIKE) da mensagem indicada; a última escrita vence
// @Tags conversations
// @Accept json
// @Produce json
// @Security Bearer
// @Param conversation_id path string true "ID da conversa"
// @Param message_id path string true "ID da mensagem"
// @Param feedback body dto.UpdateFeedbackRequest true "Feedback"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /conversations/{conversation_id}/messages/{message_id}/feedback [put]
func (c *ConversationController) UpdateFeedback(ctx *gin.Context) {
	conversationID := ctx.Param("conversation_id")
	messageID := ctx.Param("message_id")

	var request dto.UpdateFeedbackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	feedback := conversation.Feedback(request.Feedback)
	if !feedback.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Feedback inválido", "Os valores permitidos são LIKE e DISLIKE"))
		return
	}

	username := auth.GetCurrentUsername(ctx)

	err := c.conversationRepository.UpdateFeedback(ctx, username, conversationID, messageID, feedback)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) ||
			errors.Is(err, repository.ErrMessageNotFound) ||
			errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Mensagem não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar feedback", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Feedback atualizado com sucesso"))
}
