package tankRepository

const (
	queryCreateTank = `
		INSERT INTO tanks (
			id,
			user_id,
			name,
			location,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:location,
			:created_at,
			:updated_at
		)
	`

	queryGetTankByID = `
		SELECT
			id,
			user_id,
			name,
			location,
			created_at,
			updated_at
		FROM tanks
		WHERE id = :id
	`

	queryGetTanksByUserID = `
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

	queryUpdateTank = `
		UPDATE tanks
		SET
			name = :name,
			location = :location,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTank = `
		DELETE FROM tanks
		WHERE id = :id
	`

	queryCountSensorsByTankID = `
		SELECT COUNT(*) AS total
		FROM sensors
		WHERE tank_id = :tank_id
	`
)
