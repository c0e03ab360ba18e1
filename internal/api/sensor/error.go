package sensor

import "AquaBackend/pkg/response"

var (
	ErrSensorNotFound      = response.NewError(404, "sensor not found")
	ErrNotSensorOwner      = response.NewError(403, "sensor belongs to another user")
	ErrDuplicateSensorType = response.NewError(409, "tank already has a sensor of this type")
	ErrInvalidSensorType   = response.NewError(400, "unknown sensor type")
)
