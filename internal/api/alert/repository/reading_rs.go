package alertRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

func (r *readingRepository) CreateReading(c context.Context, reading entity.SensorReading) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          reading.ID,
		"sensor_id":   reading.SensorID,
		"value":       reading.Value,
		"recorded_at": reading.RecordedAt,
	}

	query, args, err := sqlx.Named(queryCreateReading, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateReading named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating sensor reading")
		return err
	}

	return nil
}
