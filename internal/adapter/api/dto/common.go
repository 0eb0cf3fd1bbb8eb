package dto

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse representa uma resposta simples com mensagem de confirmação
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewMessageResponse cria uma nova resposta de confirmação
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{
		Message: message,
	}
}
