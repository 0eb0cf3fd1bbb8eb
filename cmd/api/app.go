package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mowasalat/assistant-api/docs"
	"github.com/mowasalat/assistant-api/internal/adapter/api/controller"
	"github.com/mowasalat/assistant-api/internal/adapter/api/route"
	"github.com/mowasalat/assistant-api/internal/adapter/repository"
	"github.com/mowasalat/assistant-api/internal/domain/user"
	"github.com/mowasalat/assistant-api/internal/infrastructure/database"
	"github.com/mowasalat/assistant-api/pkg/answer"
	"github.com/mowasalat/assistant-api/pkg/auth"
	"github.com/mowasalat/assistant-api/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router                 *gin.Engine
	db                     *pgxpool.Pool
	logger                 logger.Logger
	jwtService             *auth.JWTService
	userRepository         user.Repository
	authController         *controller.AuthController
	userController         *controller.UserController
	conversationController *controller.ConversationController
}

// NewApp cria uma nova instância do aplicativo. Toda a configuração é lida do
// ambiente uma única vez aqui e passada explicitamente aos construtores.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	dbConfig := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		return nil, err
	}

	// Criar serviço de tokens
	jwtService, err := auth.NewJWTService(newJWTConfigFromEnv())
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar repositórios
	userRepo := repository.NewUserRepository(db)
	conversationRepo := repository.NewConversationRepository(db)

	// Criar o provedor de respostas
	provider := newAnswerProviderFromEnv(log)

	// Criar controllers
	authController := controller.NewAuthController(userRepo, jwtService)
	userController := controller.NewUserController(userRepo)
	conversationController := controller.NewConversationController(conversationRepo, provider, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	return &App{
		router:                 router,
		db:                     db,
		logger:                 log,
		jwtService:             jwtService,
		userRepository:         userRepo,
		authController:         authController,
		userController:         userController,
		conversationController: conversationController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	// Health check
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação da API
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	route.SetupAuthRoutes(a.router, a.authController)
	route.SetupUserRoutes(a.router, a.userController)
	route.SetupConversationRoutes(a.router, a.jwtService, a.userRepository, a.conversationController)
}

// Start configura as rotas e inicia o servidor HTTP
func (a *App) Start() error {
	a.SetupRoutes()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciando", "port", port)
	return a.router.Run(fmt.Sprintf(":%s", port))
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// newJWTConfigFromEnv monta a configuração do serviço de tokens
func newJWTConfigFromEnv() auth.Config {
	expiration := auth.DefaultExpiration
	if minutesStr := os.Getenv("JWT_EXPIRATION_MINUTES"); minutesStr != "" {
		if minutes, err := strconv.Atoi(minutesStr); err == nil && minutes > 0 {
			expiration = time.Duration(minutes) * time.Minute
		}
	}

	return auth.Config{
		SecretKey:  os.Getenv("JWT_SECRET_KEY"),
		Expiration: expiration,
	}
}

// newAnswerProviderFromEnv seleciona a implementação do provedor de respostas
func newAnswerProviderFromEnv(log logger.Logger) answer.Provider {
	switch os.Getenv("ANSWER_PROVIDER") {
	case "openai":
		return answer.NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	case "http":
		return answer.NewHTTPProvider(os.Getenv("RAG_SERVICE_URL"), answer.DefaultHTTPTimeout, log)
	default:
		log.Warn("nenhum provedor de respostas configurado, usando resposta estática")
		return answer.NewStaticProvider(os.Getenv("ANSWER_STATIC_REPLY"))
	}
}
