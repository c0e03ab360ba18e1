package alertRepository

import (
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
		Alerts:   &alertRepository{q: sqlExecutor, log: r.log},
		Readings: &readingRepository{q: sqlExecutor, log: r.log},
		Users:    &userRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Alerts interface {
		CreateAlert(c context.Context, alert entity.Alert) error
		GetAlertByID(c context.Context, id string) (entity.Alert, error)
		GetAlertsByUserID(c context.Context, userID string, status entity.AlertStatus) ([]entity.Alert, error)
		ResolveAlert(c context.Context, id string) error
		CountOpenAlertsByUserID(c context.Context, userID string) (int, error)
	}

	Readings interface {
		CreateReading(c context.Context, reading entity.SensorReading) error
	}

	Users interface {
		GetUserByID(c context.Context, id string) (entity.User, error)
	}

	Commit   func() error
	Rollback func() error
}

type alertRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type readingRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type userRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
