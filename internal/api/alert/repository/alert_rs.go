package alertRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/alert"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

type AlertDB struct {
	ID         sql.NullString `db:"id"`
	UserID     sql.NullString `db:"user_id"`
	TankID     sql.NullString `db:"tank_id"`
	SensorID   sql.NullString `db:"sensor_id"`
	SensorType sql.NullString `db:"sensor_type"`
	Message    sql.NullString `db:"message"`
	Value      float64        `db:"value"`
	Status     sql.NullString `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
	ResolvedAt sql.NullTime   `db:"resolved_at"`
}

func (r *alertRepository) CreateAlert(c context.Context, a entity.Alert) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          a.ID,
		"user_id":     a.UserID,
		"tank_id":     a.TankID,
		"sensor_id":   a.SensorID,
		"sensor_type": string(a.SensorType),
		"message":     a.Message,
		"value":       a.Value,
		"status":      string(a.Status),
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateAlert, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAlert named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating alert")
		return err
	}

	return nil
}

func (r *alertRepository) GetAlertByID(c context.Context, id string) (entity.Alert, error) {
	requestID := contextPkg.GetRequestID(c)
	var row AlertDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetAlertByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAlertByID named query preparation err")
		return entity.Alert{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Alert{}, alert.ErrAlertNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAlertByID execution err")
		return entity.Alert{}, err
	}

	return r.makeAlert(row), nil
}

// GetAlertsByUserID returns every alert when status is empty, or only the
// alerts in the given status otherwise.
func (r *alertRepository) GetAlertsByUserID(c context.Context, userID string, status entity.AlertStatus) ([]entity.Alert, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []AlertDB

	namedQuery := queryGetAlertsByUserID
	argsKV := map[string]interface{}{
		"user_id": userID,
	}
	if status != "" {
		namedQuery = queryGetAlertsByUserIDAndStatus
		argsKV["status"] = string(status)
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAlertsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAlertsByUserID execution err")
		return nil, err
	}

	alerts := make([]entity.Alert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, r.makeAlert(row))
	}

	return alerts, nil
}

func (r *alertRepository) ResolveAlert(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          id,
		"status":      string(entity.AlertStatusResolved),
		"resolved_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryResolveAlert, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ResolveAlert named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when resolving alert")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return alert.ErrAlertNotFound
	}

	return nil
}

func (r *alertRepository) CountOpenAlertsByUserID(c context.Context, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	argsKV := map[string]interface{}{
		"user_id": userID,
		"status":  string(entity.AlertStatusOpen),
	}

	query, args, err := sqlx.Named(queryCountOpenAlertsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountOpenAlertsByUserID named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountOpenAlertsByUserID execution err")
		return 0, err
	}

	return total, nil
}

func (r *alertRepository) makeAlert(row AlertDB) entity.Alert {
	a := entity.Alert{
		ID:         row.ID.String,
		UserID:     row.UserID.String,
		TankID:     row.TankID.String,
		SensorID:   row.SensorID.String,
		SensorType: entity.SensorType(row.SensorType.String),
		Message:    row.Message.String,
		Value:      row.Value,
		Status:     entity.AlertStatus(row.Status.String),
		CreatedAt:  row.CreatedAt,
	}
	if row.ResolvedAt.Valid {
		resolvedAt := row.ResolvedAt.Time
		a.ResolvedAt = &resolvedAt
	}

	return a
}
