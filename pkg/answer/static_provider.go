package answer

import (
	"context"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
)

// DefaultStaticReply é a resposta usada quando nenhum texto é configurado
const DefaultStaticReply = "O motor de respostas ainda não está configurado para este ambiente."

// StaticProvider devolve sempre a mesma resposta de texto. É o provedor
// padrão em desenvolvimento e nos testes, quando não há serviço RAG disponível.
type StaticProvider struct {
	reply string
}

// NewStaticProvider cria um provedor com a resposta fixa indicada
func NewStaticProvider(reply string) *StaticProvider {
	if reply == "" {
		reply = DefaultStaticReply
	}
	return &StaticProvider{reply: reply}
}

// Generate retorna a resposta fixa como TEXT
func (p *StaticProvider) Generate(ctx context.Context, question conversation.Question) (conversation.Answer, error) {
	return conversation.Answer{
		Type:    conversation.TypeText,
		Content: p.reply,
	}, nil
}
