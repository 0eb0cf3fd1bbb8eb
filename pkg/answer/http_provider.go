package answer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
	"github.com/mowasalat/assistant-api/pkg/logger"
)

// DefaultHTTPTimeout é o timeout defensivo aplicado às chamadas ao provedor
const DefaultHTTPTimeout = 60 * time.Second

// HTTPProvider encaminha perguntas a um serviço RAG remoto via HTTP
type HTTPProvider struct {
	client *resty.Client
	url    string
	logger logger.Logger
}

// NewHTTPProvider cria um novo provedor HTTP apontando para a URL do serviço
func NewHTTPProvider(url string, timeout time.Duration, logger logger.Logger) *HTTPProvider {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &HTTPProvider{
		client: client,
		url:    url,
		logger: logger,
	}
}

// Generate envia a pergunta ao serviço remoto e retorna a resposta tipada
func (p *HTTPProvider) Generate(ctx context.Context, question conversation.Question) (conversation.Answer, error) {
	var result conversation.Answer

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(question).
		SetResult(&result).
		Post(p.url)

	if err != nil {
		p.logger.Error("erro ao chamar o provedor de respostas", "url", p.url, "error", err)
		return conversation.Answer{}, fmt.Errorf("erro ao chamar o provedor de respostas: %w", err)
	}

	if resp.IsError() {
		p.logger.Error("provedor de respostas retornou erro", "url", p.url, "status", resp.StatusCode())
		return conversation.Answer{}, fmt.Errorf("provedor de respostas retornou status %d", resp.StatusCode())
	}

	return result, nil
}
