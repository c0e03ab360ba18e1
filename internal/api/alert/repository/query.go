package alertRepository

const (
	queryCreateAlert = `
		INSERT INTO alerts (
			id,
			user_id,
			tank_id,
			sensor_id,
			sensor_type,
			message,
			value,
			status,
			created_at
		) VALUES (
			:id,
			:user_id,
			:tank_id,
			:sensor_id,
			:sensor_type,
			:message,
			:value,
			:status,
			:created_at
		)
	`

	queryGetAlertByID = `
		SELECT
			id,
			user_id,
			tank_id,
			sensor_id,
			sensor_type,
			message,
			value,
			status,
			created_at,
			resolved_at
		FROM alerts
		WHERE id = :id
	`

	queryGetAlertsByUserID = `
		SELECT
			id,
			user_id,
			tank_id,
			sensor_id,
			sensor_type,
			message,
			value,
			status,
			created_at,
			resolved_at
		FROM alerts
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetAlertsByUserIDAndStatus = `
		SELECT
			id,
			user_id,
			tank_id,
			sensor_id,
			sensor_type,
			message,
			value,
			status,
			created_at,
			resolved_at
		FROM alerts
		WHERE user_id = :user_id
		  AND status = :status
		ORDER BY created_at DESC
	`

	queryResolveAlert = `
		UPDATE alerts
		SET
			status = :status,
			resolved_at = :resolved_at
		WHERE id = :id
	`

	queryCountOpenAlertsByUserID = `
		SELECT COUNT(*) AS total
		FROM alerts
		WHERE user_id = :user_id
		  AND status = :status
	`

	queryCreateReading = `
		INSERT INTO sensor_readings (
			id,
			sensor_id,
			value,
			recorded_at
		) VALUES (
			:id,
			:sensor_id,
			:value,
			:recorded_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			email,
			username,
			phone_number,
			role,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`
)
