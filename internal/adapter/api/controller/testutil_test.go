package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mowasalat/assistant-api/internal/adapter/api/controller"
	"github.com/mowasalat/assistant-api/internal/adapter/api/dto"
	"github.com/mowasalat/assistant-api/internal/adapter/api/route"
	"github.com/mowasalat/assistant-api/internal/adapter/repository"
	"github.com/mowasalat/assistant-api/internal/domain/conversation"
	"github.com/mowasalat/assistant-api/internal/domain/user"
	"github.com/mowasalat/assistant-api/pkg/answer"
	"github.com/mowasalat/assistant-api/pkg/auth"
)

// noopLogger descarta os logs durante os testes
type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// memoryStore guarda os documentos de usuário em memória, preservando a
// semântica do repositório real: erros sentinela e mutações atômicas
type memoryStore struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[string]*user.User),
	}
}

// memoryUserRepository implementa user.Repository sobre o memoryStore
type memoryUserRepository struct {
	store *memoryStore
}

func (r *memoryUserRepository) Create(ctx context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[u.Username]; exists {
		return repository.ErrUsernameTaken
	}

	stored := *u
	r.store.users[u.Username] = &stored
	return nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[username]
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	found := *u
	return &found, nil
}

// memoryConversationRepository implementa conversation.Repository sobre o memoryStore
type memoryConversationRepository struct {
	store *memoryStore
}

func (r *memoryConversationRepository) CreateConversation(ctx context.Context, username string, conv conversation.Conversation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[username]
	if !exists {
		return repository.ErrUserNotFound
	}

	u.Conversations = append(u.Conversations, conv)
	return nil
}

func (r *memoryConversationRepository) AppendMessage(ctx context.Context, username, conversationID string, msg conversation.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[username]
	if !exists {
		return repository.ErrUserNotFound
	}

	for i := range u.Conversations {
		if u.Conversations[i].ConversationID == conversationID {
			u.Conversations[i].Messages = append(u.Conversations[i].Messages, msg)
			u.Conversations[i].LastInteraction = time.Now().UTC()
			return nil
		}
	}
	return repository.ErrConversationNotFound
}

func (r *memoryConversationRepository) ListConversations(ctx context.Context, username string) ([]conversation.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[username]
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	convs := make([]conversation.Conversation, len(u.Conversations))
	copy(convs, u.Conversations)
	return convs, nil
}

func (r *memoryConversationRepository) FindConversation(ctx context.Context, username, conversationID string) (*conversation.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[username]
	if !exists {
		return nil, repository.ErrConversationNotFound
	}

	for i := range u.Conversations {
		if u.Conversations[i].ConversationID == conversationID {
			found := u.Conversations[i]
			return &found, nil
		}
	}
	return nil, repository.ErrConversationNotFound
}

func (r *memoryConversationRepository) DeleteConversation(ctx context.Context, username, conversationID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[username]
	if !exists {
		return repository.ErrConversationNotFound
	}

	for i := range u.Conversations {
		if u.Conversations[i].ConversationID == conversationID {
			u.Conversations = append(u.Conversations[:i], u.Conversations[i+1:]...)
			return nil
		}
	}
	return repository.ErrConversationNotFound
}

func (r *memoryConversationRepository) UpdateFeedback(ctx context.Context, username, conversationID, messageID string, feedback conversation.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, exists := r.store.users[username]
	if !exists {
		return repository.ErrUserNotFound
	}

	for i := range u.Conversations {
		if u.Conversations[i].ConversationID != conversationID {
			continue
		}
		for j := range u.Conversations[i].Messages {
			if u.Conversations[i].Messages[j].MessageID == messageID {
				fb := feedback
				u.Conversations[i].Messages[j].Feedback = &fb
				return nil
			}
		}
		return repository.ErrMessageNotFound
	}
	return repository.ErrConversationNotFound
}

// setupTestRouter monta o router com repositórios em memória e o provedor estático
func setupTestRouter(t *testing.T) (*gin.Engine, *memoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemoryStore()
	userRepo := &memoryUserRepository{store: store}
	convRepo := &memoryConversationRepository{store: store}

	jwtService, err := auth.NewJWTService(auth.Config{SecretKey: "segredo-de-teste"})
	require.NoError(t, err)

	provider := answer.NewStaticProvider("resposta de teste")

	router := gin.New()
	route.SetupAuthRoutes(router, controller.NewAuthController(userRepo, jwtService))
	route.SetupUserRoutes(router, controller.NewUserController(userRepo))
	route.SetupConversationRoutes(router, jwtService, userRepo, controller.NewConversationController(convRepo, provider, noopLogger{}))

	return router, store
}

// doJSON executa uma requisição com corpo JSON e token bearer opcional
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// doForm executa uma requisição com corpo de formulário
func doForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// createUser registra um usuário e exige sucesso
func createUser(t *testing.T, router *gin.Engine, username, password string) {
	t.Helper()

	recorder := doJSON(t, router, http.MethodPost, "/create_user/", "", dto.CreateUserRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
}

// obtainToken faz login e retorna o token de acesso
func obtainToken(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	recorder := doForm(t, router, "/token", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.TokenResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)
	return response.AccessToken
}
