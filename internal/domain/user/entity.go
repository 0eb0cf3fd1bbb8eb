package user

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
)

// User representa um usuário do sistema. As conversas do usuário ficam
// embutidas no próprio documento, não existem como registros independentes.
type User struct {
	Username       string                      `json:"username"`
	HashedPassword string                      `json:"-"` // O hash da senha não é retornado nas respostas JSON
	Conversations  []conversation.Conversation `json:"conversations"`
}

// New cria um novo usuário com a lista de conversas vazia
func New(username string) *User {
	return &User{
		Username:      username,
		Conversations: []conversation.Conversation{},
	}
}

// SetPassword configura a senha do usuário com hash bcrypt.
// O hash é salgado: duas chamadas com a mesma senha produzem digests diferentes.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida corresponde ao hash armazenado.
// Uma senha incorreta é um resultado falso normal, não um erro.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
	return err == nil
}
