package reportRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/report"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

type ReportDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	TankID      sql.NullString `db:"tank_id"`
	Name        sql.NullString `db:"name"`
	Status      sql.NullString `db:"status"`
	FileURL     sql.NullString `db:"file_url"`
	StartDate   time.Time      `db:"start_date"`
	EndDate     time.Time      `db:"end_date"`
	IsAutomatic bool           `db:"is_automatic"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *reportRepository) CreateReport(c context.Context, rep entity.Report) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           rep.ID,
		"user_id":      rep.UserID,
		"tank_id":      rep.TankID,
		"name":         rep.Name,
		"status":       string(rep.Status),
		"file_url":     rep.FileURL,
		"start_date":   rep.StartDate,
		"end_date":     rep.EndDate,
		"is_automatic": rep.IsAutomatic,
		"created_at":   time.Now(),
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateReport, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateReport named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating report")
		return err
	}

	return nil
}

func (r *reportRepository) GetReportByID(c context.Context, id string) (entity.Report, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ReportDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetReportByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportByID named query preparation err")
		return entity.Report{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Report{}, report.ErrReportNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportByID execution err")
		return entity.Report{}, err
	}

	return r.makeReport(row), nil
}

func (r *reportRepository) GetReportsByUserID(c context.Context, userID string) ([]entity.Report, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ReportDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetReportsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportsByUserID execution err")
		return nil, err
	}

	reports := make([]entity.Report, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, r.makeReport(row))
	}

	return reports, nil
}

func (r *reportRepository) UpdateReportStatus(c context.Context, id string, status entity.ReportStatus, fileURL string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     string(status),
		"file_url":   fileURL,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateReportStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReportStatus named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating report status")
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return report.ErrReportNotFound
	}

	return nil
}

func (r *reportRepository) CountReportsByUserID(c context.Context, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryCountReportsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountReportsByUserID named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountReportsByUserID execution err")
		return 0, err
	}

	return total, nil
}

func (r *reportRepository) makeReport(row ReportDB) entity.Report {
	return entity.Report{
		ID:          row.ID.String,
		UserID:      row.UserID.String,
		TankID:      row.TankID.String,
		Name:        row.Name.String,
		Status:      entity.ReportStatus(row.Status.String),
		FileURL:     row.FileURL.String,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		IsAutomatic: row.IsAutomatic,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
