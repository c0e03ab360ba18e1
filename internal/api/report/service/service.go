package reportService

import (
	"context"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/report"
	reportRepository "AquaBackend/internal/api/report/repository"
	sensorRepository "AquaBackend/internal/api/sensor/repository"
	tankRepository "AquaBackend/internal/api/tank/repository"
	"AquaBackend/internal/entity"
	"AquaBackend/pkg/s3"
	"AquaBackend/pkg/smtp"
	"AquaBackend/pkg/utils"
)

type IReportService interface {
	CreateReport(ctx context.Context, req report.CreateReportRequest) (entity.Report, error)
	GetReportByID(ctx context.Context, id string, userID string) (entity.Report, error)
	GetReportsByUserID(ctx context.Context, userID string) ([]entity.Report, error)
	GetReportDownloadURL(ctx context.Context, id string, userID string) (string, error)
}

type reportService struct {
	log        *logrus.Logger
	reportRepo reportRepository.Repository
	sensorRepo sensorRepository.Repository
	tankRepo   tankRepository.Repository
	s3         s3.ItfS3
	smtp       smtp.ItfSmtp
	utils      utils.IUtils
}

func New(
	log *logrus.Logger,
	reportRepo reportRepository.Repository,
	sensorRepo sensorRepository.Repository,
	tankRepo tankRepository.Repository,
	s3Client s3.ItfS3,
	smtpClient smtp.ItfSmtp,
	utils utils.IUtils,
) IReportService {
	return &reportService{
		log:        log,
		reportRepo: reportRepo,
		sensorRepo: sensorRepo,
		tankRepo:   tankRepo,
		s3:         s3Client,
		smtp:       smtpClient,
		utils:      utils,
	}
}
