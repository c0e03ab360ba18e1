package report

import "AquaBackend/pkg/response"

var (
	ErrReportNotFound     = response.NewError(404, "report not found")
	ErrNotReportOwner     = response.NewError(403, "report belongs to another user")
	ErrInvalidReportRange = response.NewError(400, "unknown report range")
	ErrReportNotReady     = response.NewError(409, "report is still processing")
)
