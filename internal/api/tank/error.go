package tank

import "AquaBackend/pkg/response"

var (
	ErrTankNotFound   = response.NewError(404, "tank not found")
	ErrTankHasSensors = response.NewError(409, "tank still has sensors attached")
	ErrNotTankOwner   = response.NewError(403, "tank belongs to another user")
)
