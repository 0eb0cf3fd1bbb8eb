package conversation

import (
	"context"
)

// Repository define a interface para operações sobre as conversas embutidas
// no documento de cada usuário. Toda mutação deve ser atômica em relação ao
// documento do usuário: duas escritas concorrentes na mesma conversa não
// podem se sobrescrever silenciosamente.
type Repository interface {
	// CreateConversation adiciona uma conversa vazia à lista do usuário
	CreateConversation(ctx context.Context, username string, conv Conversation) error

	// AppendMessage adiciona uma mensagem à conversa indicada e atualiza
	// o last_interaction da conversa
	AppendMessage(ctx context.Context, username, conversationID string, msg Message) error

	// ListConversations retorna a lista de conversas do usuário como está armazenada
	ListConversations(ctx context.Context, username string) ([]Conversation, error)

	// FindConversation busca uma conversa pelo id dentro da lista do usuário
	FindConversation(ctx context.Context, username, conversationID string) (*Conversation, error)

	// DeleteConversation remove a conversa com o id indicado da lista do usuário
	DeleteConversation(ctx context.Context, username, conversationID string) error

	// UpdateFeedback define o feedback da mensagem indicada dentro da conversa
	UpdateFeedback(ctx context.Context, username, conversationID, messageID string, feedback Feedback) error
}
