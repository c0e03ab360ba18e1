package reportRepository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"AquaBackend/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Reports:  &reportRepository{q: sqlExecutor, log: r.log},
		Readings: &readingRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Reports interface {
		CreateReport(c context.Context, report entity.Report) error
		GetReportByID(c context.Context, id string) (entity.Report, error)
		GetReportsByUserID(c context.Context, userID string) ([]entity.Report, error)
		UpdateReportStatus(c context.Context, id string, status entity.ReportStatus, fileURL string) error
		CountReportsByUserID(c context.Context, userID string) (int, error)
	}

	Readings interface {
		GetReadingsBySensorIDs(c context.Context, sensorIDs []string, from time.Time, to time.Time) ([]entity.SensorReading, error)
	}

	Commit   func() error
	Rollback func() error
}

type reportRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type readingRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
