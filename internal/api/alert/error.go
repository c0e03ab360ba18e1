package alert

import "AquaBackend/pkg/response"

var (
	ErrAlertNotFound        = response.NewError(404, "alert not found")
	ErrNotAlertOwner        = response.NewError(403, "alert belongs to another user")
	ErrAlertAlreadyResolved = response.NewError(409, "alert is already resolved")
)
