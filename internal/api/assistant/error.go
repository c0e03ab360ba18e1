package assistant

import "AquaBackend/pkg/response"

var ErrEmptyMessage = response.NewError(400, "message is empty")
