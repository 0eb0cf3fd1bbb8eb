package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário; o nome de usuário deve ser único
	Create(ctx context.Context, u *User) error

	// FindByUsername busca um usuário pelo nome de usuário
	FindByUsername(ctx context.Context, username string) (*User, error)
}
