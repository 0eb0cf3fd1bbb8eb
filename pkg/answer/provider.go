package answer

import (
	"context"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
)

// Provider é o contrato com o provedor externo de respostas (motor RAG).
// A chamada é síncrona e pode ser lenta; implementações devem respeitar o
// contexto e podem aplicar um timeout defensivo.
type Provider interface {
	Generate(ctx context.Context, question conversation.Question) (conversation.Answer, error)
}
