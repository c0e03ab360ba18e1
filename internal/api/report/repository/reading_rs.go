package reportRepository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
)

type ReadingDB struct {
	ID         string    `db:"id"`
	SensorID   string    `db:"sensor_id"`
	Value      float64   `db:"value"`
	RecordedAt time.Time `db:"recorded_at"`
}

func (r *readingRepository) GetReadingsBySensorIDs(c context.Context, sensorIDs []string, from time.Time, to time.Time) ([]entity.SensorReading, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ReadingDB

	if len(sensorIDs) == 0 {
		return []entity.SensorReading{}, nil
	}

	query, args, err := sqlx.In(queryGetReadingsBySensorIDs, sensorIDs, from, to)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReadingsBySensorIDs query expansion err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReadingsBySensorIDs execution err")
		return nil, err
	}

	readings := make([]entity.SensorReading, 0, len(rows))
	for _, row := range rows {
		readings = append(readings, entity.SensorReading{
			ID:         row.ID,
			SensorID:   row.SensorID,
			Value:      row.Value,
			RecordedAt: row.RecordedAt,
		})
	}

	return readings, nil
}
