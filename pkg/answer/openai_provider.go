package answer

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
)

// ErrEmptyCompletion é retornado quando a API não devolve nenhuma escolha
var ErrEmptyCompletion = errors.New("provedor de respostas não retornou conteúdo")

// OpenAIProvider produz respostas de texto usando a API de chat da OpenAI
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider cria um novo provedor baseado na OpenAI
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Generate envia a pergunta como chat completion e retorna uma resposta TEXT
func (p *OpenAIProvider) Generate(ctx context.Context, question conversation.Question) (conversation.Answer, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: question.Content,
			},
		},
	})
	if err != nil {
		return conversation.Answer{}, fmt.Errorf("erro ao chamar o provedor de respostas: %w", err)
	}

	if len(resp.Choices) == 0 {
		return conversation.Answer{}, ErrEmptyCompletion
	}

	return conversation.Answer{
		Type:    conversation.TypeText,
		Content: resp.Choices[0].Message.Content,
	}, nil
}
