package sensorRepository

const (
	queryCreateSensor = `
		INSERT INTO sensors (
			id,
			tank_id,
			name,
			type,
			hardware_id,
			calibration_date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:tank_id,
			:name,
			:type,
			:hardware_id,
			:calibration_date,
			:created_at,
			:updated_at
		)
	`

	queryGetSensorByID = `
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
		WHERE id = :id
	`

	queryGetSensorsByTankID = `
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
		WHERE tank_id = :tank_id
		ORDER BY created_at ASC
	`

	queryDeleteSensor = `
		DELETE FROM sensors
		WHERE id = :id
	`

	queryCountSensorsByTankIDAndType = `
		SELECT COUNT(*) AS total
		FROM sensors
		WHERE tank_id = :tank_id
		  AND type = :type
	`
)
