package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/database/postgres"
	alertHandler "AquaBackend/internal/api/alert/handler"
	alertRepository "AquaBackend/internal/api/alert/repository"
	alertService "AquaBackend/internal/api/alert/service"
	assistantHandler "AquaBackend/internal/api/assistant/handler"
	assistantRepository "AquaBackend/internal/api/assistant/repository"
	assistantService "AquaBackend/internal/api/assistant/service"
	reportHandler "AquaBackend/internal/api/report/handler"
	reportRepository "AquaBackend/internal/api/report/repository"
	reportService "AquaBackend/internal/api/report/service"
	sensorHandler "AquaBackend/internal/api/sensor/handler"
	sensorRepository "AquaBackend/internal/api/sensor/repository"
	sensorService "AquaBackend/internal/api/sensor/service"
	tankHandler "AquaBackend/internal/api/tank/handler"
	tankRepository "AquaBackend/internal/api/tank/repository"
	tankService "AquaBackend/internal/api/tank/service"
	"AquaBackend/internal/middleware"
	"AquaBackend/pkg/conversation"
	"AquaBackend/pkg/gemini"
	"AquaBackend/pkg/redis"
	"AquaBackend/pkg/s3"
	"AquaBackend/pkg/smtp"
	"AquaBackend/pkg/utils"
	"AquaBackend/pkg/whatsapp"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	convStore      conversation.IConversationStore
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithWhatsappClient degrades to email-only alerts when the WhatsApp device
// pairing is unavailable, instead of blocking startup.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("WhatsApp client unavailable, alerts go out by email only: %v", err)
			}
			return nil
		}
		s.whatsappClient = client
		return nil
	}
}

// WithGeminiClient is optional: without an API key the assistant answers
// unclassified messages with the help menu.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable, assistant falls back to help menu: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

// WithConversationStore picks the conversation backend. ASSISTANT_STORE=redis
// shares state across instances; anything else keeps it in process memory.
func WithConversationStore() ServerOption {
	return func(s *Server) error {
		if os.Getenv("ASSISTANT_STORE") == "redis" {
			if s.redisServer == nil {
				return fmt.Errorf("redis server must be initialized before the conversation store")
			}
			s.convStore = conversation.NewRedisStore(s.redisServer, s.log, conversation.DefaultTTL)
			return nil
		}

		s.convStore = conversation.NewMemoryStore(s.log, conversation.DefaultTTL, conversation.DefaultSweepInterval)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Tank Domain
	tankRepo := tankRepository.New(s.db, s.log)
	tankServices := tankService.New(s.log, tankRepo, s.utils)
	tankHandlers := tankHandler.New(s.log, s.validator, s.middleware, tankServices)

	// Sensor Domain
	sensorRepo := sensorRepository.New(s.db, s.log)
	sensorServices := sensorService.New(s.log, sensorRepo, tankRepo, s.utils)
	sensorHandlers := sensorHandler.New(s.log, s.validator, s.middleware, sensorServices)

	// Report Domain
	reportRepo := reportRepository.New(s.db, s.log)
	reportServices := reportService.New(s.log, reportRepo, sensorRepo, tankRepo, s.s3Client, s.smtpMailer, s.utils)
	reportHandlers := reportHandler.New(s.log, s.validator, s.middleware, reportServices)

	// Alert Domain
	alertRepo := alertRepository.New(s.db, s.log)
	alertServices := alertService.New(s.log, alertRepo, sensorRepo, tankRepo, s.smtpMailer, s.whatsappClient, s.utils)
	alertHandlers := alertHandler.New(s.log, s.validator, s.middleware, alertServices)

	// Assistant Domain
	assistantRepo := assistantRepository.New(s.db, s.log)
	assistantServices := assistantService.New(s.log, assistantRepo, tankServices, sensorServices, reportServices, s.convStore, s.geminiClient)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, tankHandlers, sensorHandlers, reportHandlers, alertHandlers, assistantHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		s.Shutdown()
		return err
	}

	return nil
}

// Shutdown releases background resources owned by the server.
func (s *Server) Shutdown() {
	if s.convStore != nil {
		s.convStore.Shutdown()
	}
	if s.whatsappClient != nil {
		s.whatsappClient.Disconnect()
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
