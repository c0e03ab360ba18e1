package alertService

import (
	"context"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/alert"
	alertRepository "AquaBackend/internal/api/alert/repository"
	sensorRepository "AquaBackend/internal/api/sensor/repository"
	tankRepository "AquaBackend/internal/api/tank/repository"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/smtp"
	"AquaBackend/pkg/utils"
	"AquaBackend/pkg/whatsapp"
)

type IAlertService interface {
	IngestReading(ctx context.Context, req alert.IngestReadingRequest) (entity.SensorReading, bool, error)
	GetAlertsByUserID(ctx context.Context, userID string, status entity.AlertStatus) ([]entity.Alert, error)
	ResolveAlert(ctx context.Context, id string, userID string) error
}

type alertService struct {
	log        *logrus.Logger
	alertRepo  alertRepository.Repository
	sensorRepo sensorRepository.Repository
	tankRepo   tankRepository.Repository
	smtp       smtp.ItfSmtp
	whatsapp   whatsapp.IWhatsappSender
	utils      utils.IUtils
}

func New(
	log *logrus.Logger,
	alertRepo alertRepository.Repository,
	sensorRepo sensorRepository.Repository,
	tankRepo tankRepository.Repository,
	smtpClient smtp.ItfSmtp,
	whatsappSender whatsapp.IWhatsappSender,
	utils utils.IUtils,
) IAlertService {
	return &alertService{
		log:        log,
		alertRepo:  alertRepo,
		sensorRepo: sensorRepo,
		tankRepo:   tankRepo,
		smtp:       smtpClient,
		whatsapp:   whatsappSender,
		utils:      utils,
	}
}
