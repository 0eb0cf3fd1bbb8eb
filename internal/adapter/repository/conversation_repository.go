package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
)

// Erros específicos do repositório de conversas
var (
	ErrConversationNotFound = errors.New("conversa não encontrada")
	ErrMessageNotFound      = errors.New("mensagem não encontrada")
	ErrConcurrentUpdate     = errors.New("conflito de atualização concorrente no documento do usuário")
)

// maxUpdateAttempts limita as tentativas de escrita sob concorrência otimista
const maxUpdateAttempts = 5

// ConversationRepository implementa conversation.Repository sobre a coluna
// JSONB de conversas do documento do usuário. As mutações usam concorrência
// otimista guardada pela coluna version: leitura, modificação em memória e
// escrita condicionada à versão lida, repetidas em caso de conflito. Cada
// escrita bem-sucedida é uma unidade atômica sobre um único documento.
type ConversationRepository struct {
	db *pgxpool.Pool
}

// NewConversationRepository cria uma nova instância de ConversationRepository
func NewConversationRepository(db *pgxpool.Pool) conversation.Repository {
	return &ConversationRepository{
		db: db,
	}
}

// mutateConversations aplica a função de mutação à lista de conversas do
// usuário dentro do laço de concorrência otimista
func (r *ConversationRepository) mutateConversations(
	ctx context.Context,
	username string,
	mutate func(convs []conversation.Conversation) ([]conversation.Conversation, error),
) error {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var rawConversations []byte
		var version int64

		err := r.db.QueryRow(ctx,
			"SELECT conversations, version FROM users WHERE username = $1",
			username).Scan(&rawConversations, &version)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrUserNotFound
			}
			return fmt.Errorf("falha ao buscar conversas do usuário: %w", err)
		}

		var convs []conversation.Conversation
		if err := json.Unmarshal(rawConversations, &convs); err != nil {
			return fmt.Errorf("falha ao desserializar conversas: %w", err)
		}

		updated, err := mutate(convs)
		if err != nil {
			return err
		}

		data, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("falha ao serializar conversas: %w", err)
		}

		tag, err := r.db.Exec(ctx,
			"UPDATE users SET conversations = $1, version = version + 1 WHERE username = $2 AND version = $3",
			data, username, version)
		if err != nil {
			return fmt.Errorf("falha ao atualizar conversas: %w", err)
		}

		if tag.RowsAffected() == 1 {
			return nil
		}
		// Outra escrita avançou a versão; recarregar e tentar de novo
	}

	return ErrConcurrentUpdate
}

// CreateConversation implementa conversation.Repository.CreateConversation
func (r *ConversationRepository) CreateConversation(ctx context.Context, username string, conv conversation.Conversation) error {
	return r.mutateConversations(ctx, username, func(convs []conversation.Conversation) ([]conversation.Conversation, error) {
		return append(convs, conv), nil
	})
}

// AppendMessage implementa conversation.Repository.AppendMessage
func (r *ConversationRepository) AppendMessage(ctx context.Context, username, conversationID string, msg conversation.Message) error {
	return r.mutateConversations(ctx, username, func(convs []conversation.Conversation) ([]conversation.Conversation, error) {
		for i := range convs {
			if convs[i].ConversationID == conversationID {
				convs[i].Messages = append(convs[i].Messages, msg)
				convs[i].LastInteraction = time.Now().UTC()
				return convs, nil
			}
		}
		return nil, ErrConversationNotFound
	})
}

// ListConversations implementa conversation.Repository.ListConversations
func (r *ConversationRepository) ListConversations(ctx context.Context, username string) ([]conversation.Conversation, error) {
	var rawConversations []byte

	err := r.db.QueryRow(ctx,
		"SELECT conversations FROM users WHERE username = $1",
		username).Scan(&rawConversations)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar conversas do usuário: %w", err)
	}

	var convs []conversation.Conversation
	if err := json.Unmarshal(rawConversations, &convs); err != nil {
		return nil, fmt.Errorf("falha ao desserializar conversas: %w", err)
	}
	if convs == nil {
		convs = []conversation.Conversation{}
	}

	return convs, nil
}

// FindConversation implementa conversation.Repository.FindConversation
func (r *ConversationRepository) FindConversation(ctx context.Context, username, conversationID string) (*conversation.Conversation, error) {
	convs, err := r.ListConversations(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	for i := range convs {
		if convs[i].ConversationID == conversationID {
			return &convs[i], nil
		}
	}

	return nil, ErrConversationNotFound
}

// DeleteConversation implementa conversation.Repository.DeleteConversation.
// Usuário inexistente e conversa inexistente são indistinguíveis para o
// chamador: ambos resultam em ErrConversationNotFound.
func (r *ConversationRepository) DeleteConversation(ctx context.Context, username, conversationID string) error {
	err := r.mutateConversations(ctx, username, func(convs []conversation.Conversation) ([]conversation.Conversation, error) {
		for i := range convs {
			if convs[i].ConversationID == conversationID {
				return append(convs[:i], convs[i+1:]...), nil
			}
		}
		return nil, ErrConversationNotFound
	})
	if errors.Is(err, ErrUserNotFound) {
		return ErrConversationNotFound
	}
	return err
}

// UpdateFeedback implementa conversation.Repository.UpdateFeedback
func (r *ConversationRepository) UpdateFeedback(ctx context.Context, username, conversationID, messageID string, feedback conversation.Feedback) error {
	return r.mutateConversations(ctx, username, func(convs []conversation.Conversation) ([]conversation.Conversation, error) {
		for i := range convs {
			if convs[i].ConversationID != conversationID {
				continue
			}
			for j := range convs[i].Messages {
				if convs[i].Messages[j].MessageID == messageID {
					fb := feedback
					convs[i].Messages[j].Feedback = &fb
					return convs, nil
				}
			}
			return nil, ErrMessageNotFound
		}
		return nil, ErrConversationNotFound
	})
}
