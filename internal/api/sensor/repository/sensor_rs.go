package sensorRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/sensor"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

type SensorDB struct {
	ID              sql.NullString `db:"id"`
	TankID          sql.NullString `db:"tank_id"`
	Name            sql.NullString `db:"name"`
	Type            sql.NullString `db:"type"`
	HardwareID      sql.NullString `db:"hardware_id"`
	CalibrationDate time.Time      `db:"calibration_date"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *sensorRepository) CreateSensor(c context.Context, s entity.Sensor) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               s.ID,
		"tank_id":          s.TankID,
		"name":             s.Name,
		"type":             string(s.Type),
		"hardware_id":      s.HardwareID,
		"calibration_date": s.CalibrationDate,
		"created_at":       time.Now(),
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateSensor, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSensor named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating sensor")
		return err
	}

	return nil
}

func (r *sensorRepository) GetSensorByID(c context.Context, id string) (entity.Sensor, error) {
	requestID := contextPkg.GetRequestID(c)
	var row SensorDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetSensorByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSensorByID named query preparation err")
		return entity.Sensor{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Sensor{}, sensor.ErrSensorNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSensorByID execution err")
		return entity.Sensor{}, err
	}

	return r.makeSensor(row), nil
}

func (r *sensorRepository) GetSensorsByTankID(c context.Context, tankID string) ([]entity.Sensor, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []SensorDB

	argsKV := map[string]interface{}{
		"tank_id": tankID,
	}

	query, args, err := sqlx.Named(queryGetSensorsByTankID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSensorsByTankID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSensorsByTankID execution err")
		return nil, err
	}

	sensors := make([]entity.Sensor, 0, len(rows))
	for _, row := range rows {
		sensors = append(sensors, r.makeSensor(row))
	}

	return sensors, nil
}

func (r *sensorRepository) DeleteSensor(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteSensor, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSensor named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting sensor")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sensor.ErrSensorNotFound
	}

	return nil
}

func (r *sensorRepository) ExistsSensorType(c context.Context, tankID string, sensorType entity.SensorType) (bool, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	argsKV := map[string]interface{}{
		"tank_id": tankID,
		"type":    string(sensorType),
	}

	query, args, err := sqlx.Named(queryCountSensorsByTankIDAndType, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ExistsSensorType named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ExistsSensorType execution err")
		return false, err
	}

	return total > 0, nil
}

func (r *sensorRepository) makeSensor(row SensorDB) entity.Sensor {
	return entity.Sensor{
		ID:              row.ID.String,
		TankID:          row.TankID.String,
		Name:            row.Name.String,
		Type:            entity.SensorType(row.Type.String),
		HardwareID:      row.HardwareID.String,
		CalibrationDate: row.CalibrationDate,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
