package tankRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/tank"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

type TankDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Location  sql.NullString `db:"location"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *tankRepository) CreateTank(c context.Context, t entity.Tank) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         t.ID,
		"user_id":    t.UserID,
		"name":       t.Name,
		"location":   t.Location,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTank, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTank named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating tank")
		return err
	}

	return nil
}

func (r *tankRepository) GetTankByID(c context.Context, id string) (entity.Tank, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TankDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTankByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTankByID named query preparation err")
		return entity.Tank{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Tank{}, tank.ErrTankNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTankByID execution err")
		return entity.Tank{}, err
	}

	return r.makeTank(row), nil
}

func (r *tankRepository) GetTanksByUserID(c context.Context, userID string) ([]entity.Tank, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TankDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTanksByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTanksByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTanksByUserID execution err")
		return nil, err
	}

	tanks := make([]entity.Tank, 0, len(rows))
	for _, row := range rows {
		tanks = append(tanks, r.makeTank(row))
	}

	return tanks, nil
}

func (r *tankRepository) UpdateTank(c context.Context, t entity.Tank) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         t.ID,
		"name":       t.Name,
		"location":   t.Location,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTank, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTank named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating tank")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return tank.ErrTankNotFound
	}

	return nil
}

func (r *tankRepository) DeleteTank(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTank, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTank named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting tank")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return tank.ErrTankNotFound
	}

	return nil
}

func (r *tankRepository) CountSensors(c context.Context, tankID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	argsKV := map[string]interface{}{
		"tank_id": tankID,
	}

	query, args, err := sqlx.Named(queryCountSensorsByTankID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountSensors named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountSensors execution err")
		return 0, err
	}

	return total, nil
}

func (r *tankRepository) makeTank(row TankDB) entity.Tank {
	return entity.Tank{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Name:      row.Name.String,
		Location:  row.Location.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
