package conversation

import (
	"encoding/base64"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ContentType representa o tipo de conteúdo de uma pergunta ou resposta
type ContentType string

// Feedback representa a avaliação dada pelo usuário a uma resposta
type Feedback string

// Constantes para ContentType
const (
	TypeText  ContentType = "TEXT"  // Conteúdo textual simples
	TypeDict  ContentType = "DICT"  // Conteúdo estruturado (objeto JSON)
	TypeImage ContentType = "IMAGE" // Conteúdo binário codificado em base64
)

// Constantes para Feedback
const (
	FeedbackLike    Feedback = "LIKE"
	FeedbackDislike Feedback = "DISLIKE"
)

// Erros de validação do domínio
var (
	ErrInvalidContentType  = errors.New("tipo de conteúdo inválido")
	ErrInvalidFeedback     = errors.New("feedback inválido: os valores permitidos são LIKE e DISLIKE")
	ErrInvalidImagePayload = errors.New("conteúdo de imagem não é um base64 válido")
	ErrInvalidAnswer       = errors.New("resposta com conteúdo incompatível com o tipo declarado")
)

// IsValid verifica se o tipo de conteúdo é um dos valores permitidos
func (t ContentType) IsValid() bool {
	switch t {
	case TypeText, TypeDict, TypeImage:
		return true
	}
	return false
}

// IsValid verifica se o feedback é um dos dois valores permitidos
func (f Feedback) IsValid() bool {
	return f == FeedbackLike || f == FeedbackDislike
}

// Question representa a pergunta enviada pelo usuário
type Question struct {
	Type    ContentType `json:"type"`
	Content string      `json:"content"`
}

// Answer representa a resposta produzida pelo provedor de respostas.
// O conteúdo varia conforme o tipo: texto para TEXT, objeto JSON para DICT
// e binário codificado em base64 para IMAGE.
type Answer struct {
	Type    ContentType `json:"type"`
	Content interface{} `json:"content"`
}

// Validate verifica se o conteúdo da resposta é compatível com o tipo declarado
func (a Answer) Validate() error {
	switch a.Type {
	case TypeText:
		if _, ok := a.Content.(string); !ok {
			return ErrInvalidAnswer
		}
	case TypeImage:
		payload, ok := a.Content.(string)
		if !ok {
			return ErrInvalidAnswer
		}
		if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
			return ErrInvalidImagePayload
		}
	case TypeDict:
		// Conteúdo estruturado é aceito como veio do provedor
	default:
		return ErrInvalidContentType
	}
	return nil
}

// Message representa uma troca pergunta/resposta dentro de uma conversa.
// Após criada, apenas o campo de feedback pode ser alterado.
type Message struct {
	MessageID string    `json:"message_id"`
	Question  Question  `json:"question"`
	Answer    Answer    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
	Feedback  *Feedback `json:"feedback,omitempty"`
}

// NewMessage cria uma nova mensagem com identificador único e timestamp atual
func NewMessage(question Question, answer Answer) Message {
	return Message{
		MessageID: uuid.New().String(),
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now().UTC(),
	}
}

// Conversation representa uma conversa pertencente a um usuário,
// armazenada embutida no documento do usuário
type Conversation struct {
	ConversationID  string    `json:"conversation_id"`
	Title           string    `json:"title"`
	LastInteraction time.Time `json:"last_interaction"`
	Messages        []Message `json:"messages"`
}

// NewConversation cria uma nova conversa vazia com identificador único
func NewConversation(title string) Conversation {
	return Conversation{
		ConversationID:  uuid.New().String(),
		Title:           title,
		LastInteraction: time.Now().UTC(),
		Messages:        []Message{},
	}
}

// SortedMessages retorna as mensagens ordenadas por timestamp ascendente.
// A ordenação acontece na leitura; a ordem de inserção não é garantida.
func (c *Conversation) SortedMessages() []Message {
	messages := make([]Message, len(c.Messages))
	copy(messages, c.Messages)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages
}
