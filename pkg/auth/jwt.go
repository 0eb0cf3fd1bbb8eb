package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Erros específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingSecret = errors.New("chave secreta JWT não configurada")
)

// DefaultExpiration é a validade padrão dos tokens emitidos
const DefaultExpiration = 120 * time.Minute

// Config contém a configuração do serviço de tokens. É construída uma única
// vez na inicialização do processo e passada explicitamente ao construtor.
type Config struct {
	SecretKey  string
	Expiration time.Duration
}

// Claims representa as claims do token JWT; o subject carrega o nome de usuário
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService implementa emissão e validação de tokens JWT assinados com HS256
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewJWTService cria uma nova instância de JWTService a partir da configuração
func NewJWTService(config Config) (*JWTService, error) {
	if config.SecretKey == "" {
		return nil, ErrMissingSecret
	}

	expiration := config.Expiration
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	return &JWTService{
		secretKey:  []byte(config.SecretKey),
		expiration: expiration,
	}, nil
}

// GenerateToken gera um token JWT para o usuário indicado
func (s *JWTService) GenerateToken(username string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken valida um token JWT e retorna as claims se for válido.
// Assinatura inválida, payload malformado, subject ausente ou token expirado
// resultam em erro.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verificar o método de assinatura
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	if claims.Subject == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
