package reportService

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/report"
	"AquaBackend/internal/api/tank"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

// CreateReport records the report in processing state and returns right
// away; a background worker aggregates the readings, uploads the CSV and
// flips the status.
func (s *reportService) CreateReport(ctx context.Context, req report.CreateReportRequest) (entity.Report, error) {
	requestID := contextPkg.GetRequestID(ctx)

	reportRange := entity.ReportRange(req.Range)
	startDate, endDate, ok := rangeWindow(reportRange, time.Now())
	if !ok {
		return entity.Report{}, report.ErrInvalidReportRange
	}

	tankRepo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return entity.Report{}, err
	}

	owningTank, err := tankRepo.Tanks.GetTankByID(ctx, req.TankID)
	if err != nil {
		return entity.Report{}, err
	}
	if owningTank.UserID != req.UserID {
		return entity.Report{}, tank.ErrNotTankOwner
	}

	sensorIDs := req.SensorIDs
	if len(sensorIDs) == 0 {
		sensorRepo, err := s.sensorRepo.NewClient(false)
		if err != nil {
			return entity.Report{}, err
		}

		sensors, err := sensorRepo.Sensors.GetSensorsByTankID(ctx, req.TankID)
		if err != nil {
			return entity.Report{}, err
		}
		for _, sn := range sensors {
			sensorIDs = append(sensorIDs, sn.ID)
		}
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate report ID")
		return entity.Report{}, err
	}

	now := time.Now()
	newReport := entity.Report{
		ID:        id,
		UserID:    req.UserID,
		TankID:    req.TankID,
		Name:      fmt.Sprintf("Reporte %s - %s", reportRange.Label(), owningTank.Name),
		Status:    entity.ReportStatusProcessing,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo, err := s.reportRepo.NewClient(false)
	if err != nil {
		return entity.Report{}, err
	}

	if err := repo.Reports.CreateReport(ctx, newReport); err != nil {
		return entity.Report{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"report_id":  id,
		"tank_id":    req.TankID,
		"range":      req.Range,
	}).Info("Report queued for processing")

	go s.processReport(requestID, newReport, sensorIDs, req.UserEmail)

	return newReport, nil
}

func (s *reportService) GetReportByID(ctx context.Context, id string, userID string) (entity.Report, error) {
	repo, err := s.reportRepo.NewClient(false)
	if err != nil {
		return entity.Report{}, err
	}

	existing, err := repo.Reports.GetReportByID(ctx, id)
	if err != nil {
		return entity.Report{}, err
	}
	if existing.UserID != userID {
		return entity.Report{}, report.ErrNotReportOwner
	}

	return existing, nil
}

func (s *reportService) GetReportsByUserID(ctx context.Context, userID string) ([]entity.Report, error) {
	repo, err := s.reportRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Reports.GetReportsByUserID(ctx, userID)
}

// GetReportDownloadURL hands out a short-lived presigned link to the stored
// CSV. Only completed reports have an artifact to link.
func (s *reportService) GetReportDownloadURL(ctx context.Context, id string, userID string) (string, error) {
	existing, err := s.GetReportByID(ctx, id, userID)
	if err != nil {
		return "", err
	}
	if existing.Status != entity.ReportStatusCompleted {
		return "", report.ErrReportNotReady
	}

	return s.s3.PresignUrl(fmt.Sprintf("reports/%s.csv", existing.ID))
}

// processReport runs outside the request lifecycle, so it carries its own
// context with a generous deadline.
func (s *reportService) processReport(requestID string, rep entity.Report, sensorIDs []string, userEmail string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = contextPkg.WithRequestID(ctx, requestID)

	repo, err := s.reportRepo.NewClient(false)
	if err != nil {
		s.failReport(ctx, rep.ID, err)
		return
	}

	readings, err := repo.Readings.GetReadingsBySensorIDs(ctx, sensorIDs, rep.StartDate, rep.EndDate)
	if err != nil {
		s.failReport(ctx, rep.ID, err)
		return
	}

	sensorRepo, err := s.sensorRepo.NewClient(false)
	if err != nil {
		s.failReport(ctx, rep.ID, err)
		return
	}

	sensors, err := sensorRepo.Sensors.GetSensorsByTankID(ctx, rep.TankID)
	if err != nil {
		s.failReport(ctx, rep.ID, err)
		return
	}

	content, err := renderCSV(readings, sensors)
	if err != nil {
		s.failReport(ctx, rep.ID, err)
		return
	}

	fileName := fmt.Sprintf("%s.csv", rep.ID)
	fileURL, err := s.s3.UploadReportFile(fileName, content)
	if err != nil {
		s.failReport(ctx, rep.ID, err)
		return
	}

	if err := repo.Reports.UpdateReportStatus(ctx, rep.ID, entity.ReportStatusCompleted, fileURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"report_id":  rep.ID,
			"error":      err.Error(),
		}).Error("Failed to mark report as completed")
		return
	}

	if userEmail != "" {
		if err := s.smtp.SendReportReady(userEmail, rep.Name, fileURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"report_id":  rep.ID,
				"error":      err.Error(),
			}).Warn("Report ready email could not be sent")
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"report_id":  rep.ID,
		"readings":   len(readings),
	}).Info("Report completed")
}

func (s *reportService) failReport(ctx context.Context, reportID string, cause error) {
	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"report_id":  reportID,
		"error":      cause.Error(),
	}).Error("Report processing failed")

	repo, err := s.reportRepo.NewClient(false)
	if err != nil {
		return
	}

	if err := repo.Reports.UpdateReportStatus(ctx, reportID, entity.ReportStatusFailed, ""); err != nil {
		s.log.WithFields(logrus.Fields{
			"report_id": reportID,
			"error":     err.Error(),
		}).Error("Failed to mark report as failed")
	}
}

func renderCSV(readings []entity.SensorReading, sensors []entity.Sensor) ([]byte, error) {
	sensorsByID := make(map[string]entity.Sensor, len(sensors))
	for _, sn := range sensors {
		sensorsByID[sn.ID] = sn
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"sensor_id", "sensor_name", "type", "value", "recorded_at"}); err != nil {
		return nil, err
	}

	for _, reading := range readings {
		sn := sensorsByID[reading.SensorID]
		record := []string{
			reading.SensorID,
			sn.Name,
			string(sn.Type),
			strconv.FormatFloat(reading.Value, 'f', 2, 64),
			reading.RecordedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func rangeWindow(r entity.ReportRange, now time.Time) (time.Time, time.Time, bool) {
	switch r {
	case entity.ReportRangeToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, now, true
	case entity.ReportRangeWeek:
		return now.AddDate(0, 0, -7), now, true
	case entity.ReportRangeMonth:
		return now.AddDate(0, -1, 0), now, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
