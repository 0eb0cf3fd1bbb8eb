package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mowasalat/assistant-api/internal/domain/conversation"
	"github.com/mowasalat/assistant-api/internal/domain/user"
)

// Erros específicos do repositório de usuários
var (
	ErrUserNotFound  = errors.New("usuário não encontrado")
	ErrUsernameTaken = errors.New("nome de usuário já registrado")
)

// UserRepository implementa a interface user.Repository usando PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	// Verificar se já existe um usuário com o mesmo nome. A verificação
	// prévia não é linearizável; a restrição de unicidade cobre a corrida.
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)",
		u.Username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("falha ao verificar existência do usuário: %w", err)
	}

	if exists {
		return ErrUsernameTaken
	}

	conversations, err := json.Marshal(u.Conversations)
	if err != nil {
		return fmt.Errorf("falha ao serializar conversas: %w", err)
	}

	query := `
		INSERT INTO users (username, hashed_password, conversations, version)
		VALUES ($1, $2, $3, 0)
	`

	_, err = r.db.Exec(ctx, query, u.Username, u.HashedPassword, conversations)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrUsernameTaken
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByUsername implementa user.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT username, hashed_password, conversations
		FROM users
		WHERE username = $1
	`

	u := &user.User{}
	var rawConversations []byte

	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.Username,
		&u.HashedPassword,
		&rawConversations,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	if err := json.Unmarshal(rawConversations, &u.Conversations); err != nil {
		return nil, fmt.Errorf("falha ao desserializar conversas: %w", err)
	}
	if u.Conversations == nil {
		u.Conversations = []conversation.Conversation{}
	}

	return u, nil
}
