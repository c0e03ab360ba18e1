package assistantRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

type tankRow struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Location  sql.NullString `db:"location"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type sensorRow struct {
	ID              sql.NullString `db:"id"`
	TankID          sql.NullString `db:"tank_id"`
	Name            sql.NullString `db:"name"`
	Type            sql.NullString `db:"type"`
	HardwareID      sql.NullString `db:"hardware_id"`
	CalibrationDate time.Time      `db:"calibration_date"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// GetUserInfrastructure builds the per-turn snapshot: every tank with its
// sensors plus the open alert and report counters. Tanks keep their
// creation order, which is also the tie-break order for partial name
// matches.
func (r *infrastructureRepository) GetUserInfrastructure(c context.Context, userID string) (entity.UserInfrastructure, error) {
	requestID := contextPkg.GetRequestID(c)

	tanks, err := r.snapshotTanks(c, userID)
	if err != nil {
		return entity.UserInfrastructure{}, err
	}

	sensorsByTank, err := r.snapshotSensors(c, tanks)
	if err != nil {
		return entity.UserInfrastructure{}, err
	}

	snapshot := entity.UserInfrastructure{
		Tanks: make([]entity.TankWithSensors, 0, len(tanks)),
	}
	for _, t := range tanks {
		sensors := sensorsByTank[t.ID]
		if sensors == nil {
			sensors = []entity.Sensor{}
		}
		snapshot.Tanks = append(snapshot.Tanks, entity.TankWithSensors{
			Tank:    t,
			Sensors: sensors,
		})
	}

	openAlerts, err := r.countByUser(c, querySnapshotOpenAlertCount, userID)
	if err != nil {
		return entity.UserInfrastructure{}, err
	}
	snapshot.OpenAlertCount = openAlerts

	reports, err := r.countByUser(c, querySnapshotReportCount, userID)
	if err != nil {
		return entity.UserInfrastructure{}, err
	}
	snapshot.ReportCount = reports

	r.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"tanks":      len(snapshot.Tanks),
	}).Debug("Built infrastructure snapshot")

	return snapshot, nil
}

func (r *infrastructureRepository) snapshotTanks(c context.Context, userID string) ([]entity.Tank, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []tankRow

	query, args, err := sqlx.Named(querySnapshotTanks, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("snapshotTanks named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("snapshotTanks execution err")
		return nil, err
	}

	tanks := make([]entity.Tank, 0, len(rows))
	for _, row := range rows {
		tanks = append(tanks, entity.Tank{
			ID:        row.ID.String,
			UserID:    row.UserID.String,
			Name:      row.Name.String,
			Location:  row.Location.String,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return tanks, nil
}

func (r *infrastructureRepository) snapshotSensors(c context.Context, tanks []entity.Tank) (map[string][]entity.Sensor, error) {
	requestID := contextPkg.GetRequestID(c)

	if len(tanks) == 0 {
		return map[string][]entity.Sensor{}, nil
	}

	tankIDs := make([]string, 0, len(tanks))
	for _, t := range tanks {
		tankIDs = append(tankIDs, t.ID)
	}

	query, args, err := sqlx.In(querySnapshotSensors, tankIDs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("snapshotSensors query expansion err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []sensorRow
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("snapshotSensors execution err")
		return nil, err
	}

	sensorsByTank := make(map[string][]entity.Sensor, len(tanks))
	for _, row := range rows {
		sensorsByTank[row.TankID.String] = append(sensorsByTank[row.TankID.String], entity.Sensor{
			ID:              row.ID.String,
			TankID:          row.TankID.String,
			Name:            row.Name.String,
			Type:            entity.SensorType(row.Type.String),
			HardwareID:      row.HardwareID.String,
			CalibrationDate: row.CalibrationDate,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
	}

	return sensorsByTank, nil
}

func (r *infrastructureRepository) countByUser(c context.Context, namedQuery string, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("countByUser named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("countByUser execution err")
		return 0, err
	}

	return total, nil
}
