package alertService

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/alert"
	"AquaBackend/internal/api/tank"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

// IngestReading stores the reading, checks it against the safe range for
// its sensor type and opens an alert when the value is out of bounds. The
// second return value reports whether an alert was raised.
func (s *alertService) IngestReading(ctx context.Context, req alert.IngestReadingRequest) (entity.SensorReading, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sensorRepo, err := s.sensorRepo.NewClient(false)
	if err != nil {
		return entity.SensorReading{}, false, err
	}

	sensor, err := sensorRepo.Sensors.GetSensorByID(ctx, req.SensorID)
	if err != nil {
		return entity.SensorReading{}, false, err
	}

	tankRepo, err := s.tankRepo.NewClient(false)
	if err != nil {
		return entity.SensorReading{}, false, err
	}

	owningTank, err := tankRepo.Tanks.GetTankByID(ctx, sensor.TankID)
	if err != nil {
		return entity.SensorReading{}, false, err
	}
	if owningTank.UserID != req.UserID {
		return entity.SensorReading{}, false, tank.ErrNotTankOwner
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.SensorReading{}, false, err
	}

	reading := entity.SensorReading{
		ID:         id,
		SensorID:   sensor.ID,
		Value:      req.Value,
		RecordedAt: time.Now(),
	}

	repo, err := s.alertRepo.NewClient(false)
	if err != nil {
		return entity.SensorReading{}, false, err
	}

	if err := repo.Readings.CreateReading(ctx, reading); err != nil {
		return entity.SensorReading{}, false, err
	}

	message := evaluateReading(sensor.Type, req.Value)
	if message == "" {
		return reading, false, nil
	}

	alertID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.SensorReading{}, false, err
	}

	newAlert := entity.Alert{
		ID:         alertID,
		UserID:     owningTank.UserID,
		TankID:     owningTank.ID,
		SensorID:   sensor.ID,
		SensorType: sensor.Type,
		Message:    fmt.Sprintf("%s - %s", owningTank.Name, message),
		Value:      req.Value,
		Status:     entity.AlertStatusOpen,
		CreatedAt:  time.Now(),
	}

	if err := repo.Alerts.CreateAlert(ctx, newAlert); err != nil {
		return entity.SensorReading{}, false, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"alert_id":   alertID,
		"sensor_id":  sensor.ID,
		"tank_id":    owningTank.ID,
		"value":      req.Value,
	}).Warn("Out-of-range reading, alert opened")

	go s.notifyAlert(requestID, newAlert)

	return reading, true, nil
}

func (s *alertService) GetAlertsByUserID(ctx context.Context, userID string, status entity.AlertStatus) ([]entity.Alert, error) {
	repo, err := s.alertRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Alerts.GetAlertsByUserID(ctx, userID, status)
}

func (s *alertService) ResolveAlert(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.alertRepo.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Alerts.GetAlertByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return alert.ErrNotAlertOwner
	}
	if existing.Status == entity.AlertStatusResolved {
		return alert.ErrAlertAlreadyResolved
	}

	if err := repo.Alerts.ResolveAlert(ctx, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"alert_id":   id,
	}).Info("Alert resolved")

	return nil
}

// notifyAlert reaches the tank owner over email and WhatsApp. Delivery
// failures are logged and swallowed; the alert row is already persisted.
func (s *alertService) notifyAlert(requestID string, a entity.Alert) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = contextPkg.WithRequestID(ctx, requestID)

	repo, err := s.alertRepo.NewClient(false)
	if err != nil {
		return
	}

	owner, err := repo.Users.GetUserByID(ctx, a.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"alert_id":   a.ID,
			"error":      err.Error(),
		}).Error("Could not load alert contact info")
		return
	}

	if owner.Email != "" {
		if err := s.smtp.SendAlertNotification(owner.Email, a.Message); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"alert_id":   a.ID,
				"error":      err.Error(),
			}).Warn("Alert email could not be sent")
		}
	}

	if s.whatsapp != nil && owner.PhoneNumber != "" {
		if err := s.whatsapp.SendAlert(ctx, owner.PhoneNumber, a.Message); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"alert_id":   a.ID,
				"error":      err.Error(),
			}).Warn("Alert WhatsApp message could not be sent")
		}
	}
}
