package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	"github.com/KelGut13/backend-crt/config"
	chatHandler "github.com/KelGut13/backend-crt/internal/chat/handler"
	chatRepository "github.com/KelGut13/backend-crt/internal/chat/repository"
	chatUsecase "github.com/KelGut13/backend-crt/internal/chat/usecase"
	friendHandler "github.com/KelGut13/backend-crt/internal/friend/handler"
	friendRepository "github.com/KelGut13/backend-crt/internal/friend/repository"
	friendUsecase "github.com/KelGut13/backend-crt/internal/friend/usecase"
	"github.com/KelGut13/backend-crt/internal/middleware"
	userHandler "github.com/KelGut13/backend-crt/internal/user/handler"
	userRepository "github.com/KelGut13/backend-crt/internal/user/repository"
	userUsecase "github.com/KelGut13/backend-crt/internal/user/usecase"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

type Server struct {
	app    *fiber.App
	cfg    *config.Config
	db     *bun.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewServer(cfg *config.Config, logger logger.Logger, db *bun.DB, rdb *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "backend-crt",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	s := &Server{
		app:    app,
		cfg:    cfg,
		db:     db,
		rdb:    rdb,
		logger: logger,
	}
	s.mapRoutes()
	return s
}

func (s *Server) mapRoutes() {
	presenceTTL := time.Duration(s.cfg.Presence.TTLSeconds) * time.Second

	userRepo := userRepository.NewUserRepository(s.db, s.logger)
	presence := userRepository.NewRedisPresence(s.rdb, presenceTTL)
	friendRepo := friendRepository.NewFriendRepository(s.db, s.logger)
	chatRepo := chatRepository.NewChatRepository(s.db, s.logger)

	userUC := userUsecase.NewUserUsecase(userRepo, presence, s.logger)
	friendUC := friendUsecase.NewFriendUsecase(friendRepo, userRepo, s.logger)
	chatUC := chatUsecase.NewChatUsecase(chatRepo, userRepo, friendRepo, s.logger)

	users := userHandler.NewUserHandler(userUC, s.logger)
	friends := friendHandler.NewFriendHandler(friendUC, s.logger)
	chats := chatHandler.NewChatHandler(chatUC, s.logger)

	s.app.Use(recover.New())
	s.app.Use(fiberlogger.New())

	api := s.app.Group("/api", middleware.Auth(s.cfg, s.logger))

	userGroup := api.Group("/users")
	userGroup.Put("/profile", users.UpdateProfile)
	userGroup.Put("/online-status", users.SetOnlineStatus)
	userGroup.Get("/profile/:userID", users.GetProfile)

	friendGroup := api.Group("/friends")
	friendGroup.Get("/search", friends.Search)
	friendGroup.Post("/send-request", friends.SendRequest)
	friendGroup.Get("/requests", friends.ListRequests)
	friendGroup.Put("/accept/:requestID", friends.Accept)
	friendGroup.Delete("/reject/:requestID", friends.Reject)
	friendGroup.Get("/list", friends.ListFriends)
	friendGroup.Delete("/remove/:friendID", friends.Remove)

	// Literal segments registered before the :peerID catch-all so fiber
	// does not shadow them.
	chatGroup := api.Group("/chat")
	chatGroup.Get("/list/all", chats.ListConversations)
	chatGroup.Get("/messages/:conversationID", chats.PollMessages)
	chatGroup.Get("/updates/:conversationID", chats.PollDeleted)
	chatGroup.Post("/:conversationID/message", chats.SendMessage)
	chatGroup.Put("/:conversationID/mark-read", chats.MarkRead)
	chatGroup.Delete("/message/:messageID", chats.DeleteMessage)
	chatGroup.Get("/:peerID", chats.OpenConversation)
}

func (s *Server) Run() error {
	return s.app.Listen(s.cfg.Server.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
