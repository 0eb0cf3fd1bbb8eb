package answer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
	"github.com/mowasalat/assistant-api/pkg/answer"
)

// noopLogger descarta os logs durante os testes
type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func TestStaticProviderDefaultReply(t *testing.T) {
	provider := answer.NewStaticProvider("")

	got, err := provider.Generate(context.Background(), conversation.Question{
		Type:    conversation.TypeText,
		Content: "olá",
	})

	require.NoError(t, err)
	assert.Equal(t, conversation.TypeText, got.Type)
	assert.Equal(t, answer.DefaultStaticReply, got.Content)
}

func TestStaticProviderCustomReply(t *testing.T) {
	provider := answer.NewStaticProvider("resposta fixa")

	got, err := provider.Generate(context.Background(), conversation.Question{
		Type:    conversation.TypeText,
		Content: "olá",
	})

	require.NoError(t, err)
	assert.Equal(t, "resposta fixa", got.Content)
}

func TestHTTPProviderGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"TEXT","content":"a próxima partida é às 14h"}`))
	}))
	defer server.Close()

	provider := answer.NewHTTPProvider(server.URL, answer.DefaultHTTPTimeout, noopLogger{})

	got, err := provider.Generate(context.Background(), conversation.Question{
		Type:    conversation.TypeText,
		Content: "quando sai o próximo ônibus?",
	})

	require.NoError(t, err)
	assert.Equal(t, conversation.TypeText, got.Type)
	assert.Equal(t, "a próxima partida é às 14h", got.Content)
}

func TestHTTPProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := answer.NewHTTPProvider(server.URL, answer.DefaultHTTPTimeout, noopLogger{})

	_, err := provider.Generate(context.Background(), conversation.Question{
		Type:    conversation.TypeText,
		Content: "olá",
	})

	assert.Error(t, err)
}

func TestHTTPProviderUnreachable(t *testing.T) {
	provider := answer.NewHTTPProvider("http://127.0.0.1:1/respostas", answer.DefaultHTTPTimeout, noopLogger{})

	_, err := provider.Generate(context.Background(), conversation.Question{
		Type:    conversation.TypeText,
		Content: "olá",
	})

	assert.Error(t, err)
}
