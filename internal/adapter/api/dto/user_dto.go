package dto

// CreateUserRequest representa os dados para criação de usuário
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse representa a resposta de criação de usuário
type UserResponse struct {
	Username string `json:"username"`
}
