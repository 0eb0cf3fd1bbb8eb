package dto

import (
	"time"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
)

// CreateConversationRequest representa os dados para criação de conversa
type CreateConversationRequest struct {
	Title string `json:"title" binding:"required"`
}

// ConversationResponse representa a resposta de criação de conversa
type ConversationResponse struct {
	ConversationID string `json:"conversation_id"`
	Title          string `json:"title"`
}

// QuestionPayload representa a pergunta enviada na criação de mensagem
type QuestionPayload struct {
	Type    string `json:"type" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateMessageRequest representa os dados para criação de mensagem
type CreateMessageRequest struct {
	Question QuestionPayload `json:"question" binding:"required"`
}

// CreateMessageResponse representa a resposta de criação de mensagem
type CreateMessageResponse struct {
	MessageID string              `json:"message_id"`
	Answer    conversation.Answer `json:"answer"`
}

// ConversationListResponse representa a lista de conversas do usuário
type ConversationListResponse struct {
	Conversations []conversation.Conversation `json:"conversations"`
}

// ConversationMessagesResponse representa as mensagens de uma conversa,
// ordenadas por timestamp ascendente
type ConversationMessagesResponse struct {
	ConversationID  string                 `json:"conversation_id"`
	LastInteraction time.Time              `json:"last_interaction"`
	Messages        []conversation.Message `json:"messages"`
}

// UpdateFeedbackRequest representa os dados para atualização de feedback
type UpdateFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}
