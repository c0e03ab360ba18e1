package nlp

import (
	"AquaBackend/internal/entity"
)

// ActionKind enumerates every operation the assistant can perform. The set
// is closed: the classifier can only ever produce one of these, which keeps
// the decision surface bounded and auditable.
type ActionKind string

const (
	ActionCreateTank    ActionKind = "CREATE_TANK"
	ActionEditTank      ActionKind = "EDIT_TANK"
	ActionDeleteTank    ActionKind = "DELETE_TANK"
	ActionCreateSensors ActionKind = "CREATE_SENSORS"
	ActionDeleteSensor  ActionKind = "DELETE_SENSOR"
	ActionCreateReport  ActionKind = "CREATE_REPORT"
	ActionShowStatus    ActionKind = "SHOW_STATUS"
)

// PendingAction is a classified candidate operation. Exactly the params
// field matching Action is set (SHOW_STATUS carries no params), so dispatch
// sites never read fields that do not belong to the variant.
//
// The classifier fills params from raw text; the confirmation builder
// enriches them with resolved IDs before the action is stored for
// confirmation. Once stored it is replaced wholesale, never mutated.
type PendingAction struct {
	Action        ActionKind           `json:"action"`
	CreateTank    *CreateTankParams    `json:"create_tank,omitempty"`
	EditTank      *EditTankParams      `json:"edit_tank,omitempty"`
	DeleteTank    *DeleteTankParams    `json:"delete_tank,omitempty"`
	CreateSensors *CreateSensorsParams `json:"create_sensors,omitempty"`
	DeleteSensor  *DeleteSensorParams  `json:"delete_sensor,omitempty"`
	CreateReport  *CreateReportParams  `json:"create_report,omitempty"`
}

type CreateTankParams struct {
	// ProposedName is computed by the confirmation builder from the
	// existing "Tanque NNN" sequence.
	ProposedName string `json:"proposed_name,omitempty"`
}

type EditTankParams struct {
	TankName    string `json:"tank_name,omitempty"`
	NewName     string `json:"new_name,omitempty"`
	NewLocation string `json:"new_location,omitempty"`

	// Resolved by the confirmation builder.
	TankID       string `json:"tank_id,omitempty"`
	ResolvedName string `json:"resolved_name,omitempty"`
}

type DeleteTankParams struct {
	TankName string `json:"tank_name"`

	TankID       string `json:"tank_id,omitempty"`
	ResolvedName string `json:"resolved_name,omitempty"`
}

type CreateSensorsParams struct {
	Types    []entity.SensorType `json:"types"`
	TankName string              `json:"tank_name,omitempty"`

	TankID       string              `json:"tank_id,omitempty"`
	ResolvedName string              `json:"resolved_name,omitempty"`
	MissingTypes []entity.SensorType `json:"missing_types,omitempty"`
}

type DeleteSensorParams struct {
	Type     entity.SensorType `json:"type"`
	TankName string            `json:"tank_name,omitempty"`

	TankID       string `json:"tank_id,omitempty"`
	ResolvedName string `json:"resolved_name,omitempty"`
	SensorID     string `json:"sensor_id,omitempty"`
	SensorName   string `json:"sensor_name,omitempty"`
}

type CreateReportParams struct {
	Range entity.ReportRange `json:"range"`

	TankID       string   `json:"tank_id,omitempty"`
	ResolvedName string   `json:"resolved_name,omitempty"`
	SensorIDs    []string `json:"sensor_ids,omitempty"`
}
