package assistantService

import (
	"context"

	"github.com/sirupsen/logrus"

	assistantRepository "AquaBackend/internal/api/assistant/repository"
	reportService "AquaBackend/internal/api/report/service"
	sensorService "AquaBackend/internal/api/sensor/service"
	tankService "AquaBackend/internal/api/tank/service"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/conversation"
	"AquaBackend/pkg/gemini"
)

// IAssistantService is the conversational surface. HandleMessage always
// returns a displayable reply; failures inside a turn become user-facing
// text, never errors to the transport layer.
type IAssistantService interface {
	HandleMessage(ctx context.Context, user entity.UserLoginData, message string) string
}

type assistantService struct {
	log           *logrus.Logger
	assistantRepo assistantRepository.Repository
	tankService   tankService.ITankService
	sensorService sensorService.ISensorService
	reportService reportService.IReportService
	store         conversation.IConversationStore
	gemini        gemini.IGemini
}

// New wires the engine. gemini may be nil; unclassified messages then fall
// back to the static help menu instead of free-form Q&A.
func New(
	log *logrus.Logger,
	assistantRepo assistantRepository.Repository,
	tankService tankService.ITankService,
	sensorService sensorService.ISensorService,
	reportService reportService.IReportService,
	store conversation.IConversationStore,
	geminiClient gemini.IGemini,
) IAssistantService {
	return &assistantService{
		log:           log,
		assistantRepo: assistantRepo,
		tankService:   tankService,
		sensorService: sensorService,
		reportService: reportService,
		store:         store,
		gemini:        geminiClient,
	}
}
