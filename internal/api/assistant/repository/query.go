package assistantRepository

const (
	querySnapshotTanks = `
		SELECT
			id,
			user_id,
			name,
			location,
			created_at,
			updated_at
		FROM tanks
		WHERE user_id = :user_id
		ORDER BY created_at ASC
	`

	querySnapshotSensors = `
		SELECT
			id,
			tank_id,
			name,
			type,
			hardware_id,
			calibration_date,
			created_at,
			updated_at
		FROM sensors
		WHERE tank_id IN (?)
		ORDER BY created_at ASC
	`

	querySnapshotOpenAlertCount = `
		SELECT COUNT(*) AS total
		FROM alerts
		WHERE user_id = :user_id
		  AND status = 'open'
	`

	querySnapshotReportCount = `
		SELECT COUNT(*) AS total
		FROM reports
		WHERE user_id = :user_id
	`
)
