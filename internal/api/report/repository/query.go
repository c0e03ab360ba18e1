package reportRepository

const (
	queryCreateReport = `
		INSERT INTO reports (
			id,
			user_id,
			tank_id,
			name,
			status,
			file_url,
			start_date,
			end_date,
			is_automatic,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:tank_id,
			:name,
			:status,
			:file_url,
			:start_date,
			:end_date,
			:is_automatic,
			:created_at,
			:updated_at
		)
	`

	queryGetReportByID = `
		SELECT
			id,
			user_id,
			tank_id,
			name,
			status,
			file_url,
			start_date,
			end_date,
			is_automatic,
			created_at,
			updated_at
		FROM reports
		WHERE id = :id
	`

	queryGetReportsByUserID = `
		SELECT
			id,
			user_id,
			tank_id,
			name,
			status,
			file_url,
			start_date,
			end_date,
			is_automatic,
			created_at,
			updated_at
		FROM reports
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateReportStatus = `
		UPDATE reports
		SET
			status = :status,
			file_url = :file_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryCountReportsByUserID = `
		SELECT COUNT(*) AS total
		FROM reports
		WHERE user_id = :user_id
	`

	queryGetReadingsBySensorIDs = `
		SELECT
			id,
			sensor_id,
			value,
			recorded_at
		FROM sensor_readings
		WHERE sensor_id IN (?)
		  AND recorded_at >= ?
		  AND recorded_at < ?
		ORDER BY recorded_at ASC
	`
)
