package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mowasalat/assistant-api/internal/adapter/api/dto"
	"github.com/mowasalat/assistant-api/internal/domain/conversation"
)

func TestConversationEndToEnd(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Criar usuário e autenticar
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	// Criar conversa
	recorder := doJSON(t, router, http.MethodPost, "/create_conversation/", token, dto.CreateConversationRequest{
		Title: "viagem",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var created dto.ConversationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	require.NotEmpty(t, created.ConversationID)
	assert.Equal(t, "viagem", created.Title)

	// Criar mensagem com pergunta de texto
	recorder = doJSON(t, router, http.MethodPost, "/create_message/"+created.ConversationID+"/", token, dto.CreateMessageRequest{
		Question: dto.QuestionPayload{Type: "TEXT", Content: "qual o horário do próximo ônibus?"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var message dto.CreateMessageResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &message))
	require.NotEmpty(t, message.MessageID)
	assert.Equal(t, conversation.TypeText, message.Answer.Type)

	// Listar conversas
	recorder = doJSON(t, router, http.MethodGet, "/conversations/", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var list dto.ConversationListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	require.Len(t, list.Conversations, 1)
	assert.Equal(t, created.ConversationID, list.Conversations[0].ConversationID)

	// Listar mensagens da conversa
	recorder = doJSON(t, router, http.MethodGet, "/conversations/"+created.ConversationID+"/messages/", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var messages dto.ConversationMessagesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &messages))
	assert.Equal(t, created.ConversationID, messages.ConversationID)
	require.Len(t, messages.Messages, 1)
	assert.Equal(t, message.MessageID, messages.Messages[0].MessageID)
	assert.False(t, messages.LastInteraction.IsZero())
}

func TestCreateConversationWithoutToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/create_conversation/", "", dto.CreateConversationRequest{
		Title: "viagem",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestTokenOfDeletedUserIsRejected(t *testing.T) {
	router, store := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	// Um token válido cujo usuário foi removido deixa de autenticar
	store.mu.Lock()
	delete(store.users, "alice")
	store.mu.Unlock()

	recorder := doJSON(t, router, http.MethodPost, "/create_conversation/", token, dto.CreateConversationRequest{
		Title: "viagem",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/conversations/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateMessageUnknownConversation(t *testing.T) {
	router, _ := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	recorder := doJSON(t, router, http.MethodPost, "/create_message/inexistente/", token, dto.CreateMessageRequest{
		Question: dto.QuestionPayload{Type: "TEXT", Content: "olá"},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateMessageInvalidQuestionType(t *testing.T) {
	router, _ := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	recorder := doJSON(t, router, http.MethodPost, "/create_message/qualquer/", token, dto.CreateMessageRequest{
		Question: dto.QuestionPayload{Type: "AUDIO", Content: "olá"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListMessagesSortedByTimestamp(t *testing.T) {
	router, store := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	// Semear mensagens com timestamps fora de ordem direto no armazenamento
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	store.mu.Lock()
	store.users["alice"].Conversations = []conversation.Conversation{
		{
			ConversationID:  "c1",
			Title:           "viagem",
			LastInteraction: base.Add(2 * time.Minute),
			Messages: []conversation.Message{
				{MessageID: "m2", Timestamp: base.Add(1 * time.Minute)},
				{MessageID: "m3", Timestamp: base.Add(2 * time.Minute)},
				{MessageID: "m1", Timestamp: base},
			},
		},
	}
	store.mu.Unlock()

	recorder := doJSON(t, router, http.MethodGet, "/conversations/c1/messages/", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var messages dto.ConversationMessagesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &messages))
	require.Len(t, messages.Messages, 3)
	assert.Equal(t, "m1", messages.Messages[0].MessageID)
	assert.Equal(t, "m2", messages.Messages[1].MessageID)
	assert.Equal(t, "m3", messages.Messages[2].MessageID)
}

func TestDeleteConversation(t *testing.T) {
	router, _ := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	recorder := doJSON(t, router, http.MethodPost, "/create_conversation/", token, dto.CreateConversationRequest{Title: "primeira"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var first dto.ConversationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &first))

	recorder = doJSON(t, router, http.MethodPost, "/create_conversation/", token, dto.CreateConversationRequest{Title: "segunda"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var second dto.ConversationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &second))

	// Remover a primeira conversa
	recorder = doJSON(t, router, http.MethodDelete, "/delete_conversation/"+first.ConversationID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Listar mensagens da conversa removida falha
	recorder = doJSON(t, router, http.MethodGet, "/conversations/"+first.ConversationID+"/messages/", token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// A outra conversa permanece intacta
	recorder = doJSON(t, router, http.MethodGet, "/conversations/", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var list dto.ConversationListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	require.Len(t, list.Conversations, 1)
	assert.Equal(t, second.ConversationID, list.Conversations[0].ConversationID)
}

func TestDeleteConversationUnknownID(t *testing.T) {
	router, _ := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	recorder := doJSON(t, router, http.MethodDelete, "/delete_conversation/inexistente", token, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateFeedback(t *testing.T) {
	router, _ := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	recorder := doJSON(t, router, http.MethodPost, "/create_conversation/", token, dto.CreateConversationRequest{Title: "viagem"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var created dto.ConversationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	recorder = doJSON(t, router, http.MethodPost, "/create_message/"+created.ConversationID+"/", token, dto.CreateMessageRequest{
		Question: dto.QuestionPayload{Type: "TEXT", Content: "olá"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	var message dto.CreateMessageResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &message))

	feedbackPath := "/conversations/" + created.ConversationID + "/messages/" + message.MessageID + "/feedback"

	// Valor fora do enum é rejeitado
	recorder = doJSON(t, router, http.MethodPut, feedbackPath, token, dto.UpdateFeedbackRequest{Feedback: "MAYBE"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// LIKE é aceito e fica visível na listagem
	recorder = doJSON(t, router, http.MethodPut, feedbackPath, token, dto.UpdateFeedbackRequest{Feedback: "LIKE"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/conversations/"+created.ConversationID+"/messages/", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var messages dto.ConversationMessagesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &messages))
	require.Len(t, messages.Messages, 1)
	require.NotNil(t, messages.Messages[0].Feedback)
	assert.Equal(t, conversation.FeedbackLike, *messages.Messages[0].Feedback)

	// A última escrita vence
	recorder = doJSON(t, router, http.MethodPut, feedbackPath, token, dto.UpdateFeedbackRequest{Feedback: "DISLIKE"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/conversations/"+created.ConversationID+"/messages/", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &messages))
	require.NotNil(t, messages.Messages[0].Feedback)
	assert.Equal(t, conversation.FeedbackDislike, *messages.Messages[0].Feedback)
}

func TestUpdateFeedbackUnknownMessage(t *testing.T) {
	router, _ := setupTestRouter(t)
	createUser(t, router, "alice", "senha123")
	token := obtainToken(t, router, "alice", "senha123")

	recorder := doJSON(t, router, http.MethodPost, "/create_conversation/", token, dto.CreateConversationRequest{Title: "viagem"})
	require.Equal(t, http.StatusOK, recorder.Code)
	var created dto.ConversationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	recorder = doJSON(t, router, http.MethodPut,
		"/conversations/"+created.ConversationID+"/messages/inexistente/feedback", token,
		dto.UpdateFeedbackRequest{Feedback: "LIKE"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
