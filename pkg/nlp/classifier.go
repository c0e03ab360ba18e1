package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"AquaBackend/internal/entity"
)

// The classifier is a deterministic keyword/pattern matcher over Spanish
// text. Rules are evaluated in a fixed order and the first rule whose
// predicate matches decides the turn; ordering matters because keyword sets
// overlap ("sensor" appears in create and delete phrasings, "tanque" in
// three different rules). A matched rule may still yield no candidate (for
// example a sensor request naming no sensor type), in which case the whole
// classification is a miss rather than a guess.

var (
	createVerbs = []string{"crear", "crea", "agregar", "agrega", "pon"}
	editVerbs   = []string{
		"editar", "edita", "cambiar", "cambia", "modificar", "modifica",
		"actualizar", "actualiza", "renombrar", "renombra",
	}
	deleteVerbs = []string{
		"eliminar", "elimina", "borrar", "borra", "quitar", "quita",
		"remover", "remueve",
	}
	reportVerbs   = []string{"crear", "crea", "generar", "genera", "hacer", "haz", "dame"}
	locationWords = []string{"ubicacion", "localizacion", "lugar", "direccion"}
	statusWords   = []string{"estado", "resumen", "informacion", "info", "status"}
	allTypeWords  = []string{"todos", "completo", "falta"}
)

var (
	tankRefPattern = regexp.MustCompile(`tanque\s+([a-z0-9]+)`)
	afterToPattern = regexp.MustCompile(`(?:^|\s)(?:a|por)\s+(.+)$`)
	phPattern      = regexp.MustCompile(`\bph\b`)
	tempPattern    = regexp.MustCompile(`temperatura`)
	oxygenPattern  = regexp.MustCompile(`oxigeno`)
)

type rule struct {
	name    string
	match   func(text string) bool
	extract func(text string) *PendingAction
}

// rules is evaluated top to bottom; first match wins.
var rules = []rule{
	{
		name: "create_sensors",
		match: func(t string) bool {
			return strings.Contains(t, "sensor") && containsAny(t, createVerbs)
		},
		extract: extractCreateSensors,
	},
	{
		name: "edit_tank_location",
		match: func(t string) bool {
			return containsAny(t, editVerbs) && containsAny(t, locationWords)
		},
		extract: extractEditLocation,
	},
	{
		name: "edit_tank_name",
		match: func(t string) bool {
			return containsAny(t, editVerbs) &&
				(strings.Contains(t, "nombre") || strings.Contains(t, "tanque")) &&
				!containsAny(t, locationWords)
		},
		extract: extractEditName,
	},
	{
		name: "create_tank",
		match: func(t string) bool {
			return containsAny(t, createVerbs) && strings.Contains(t, "tanque") &&
				!strings.Contains(t, "sensor")
		},
		extract: func(string) *PendingAction {
			return &PendingAction{Action: ActionCreateTank, CreateTank: &CreateTankParams{}}
		},
	},
	{
		name: "delete_tank",
		match: func(t string) bool {
			return containsAny(t, deleteVerbs) && strings.Contains(t, "tanque") &&
				!strings.Contains(t, "sensor")
		},
		extract: func(t string) *PendingAction {
			return &PendingAction{
				Action:     ActionDeleteTank,
				DeleteTank: &DeleteTankParams{TankName: extractTankRef(t)},
			}
		},
	},
	{
		name: "delete_sensor",
		match: func(t string) bool {
			return containsAny(t, deleteVerbs) && strings.Contains(t, "sensor")
		},
		extract: extractDeleteSensor,
	},
	{
		name: "create_report",
		match: func(t string) bool {
			return containsAny(t, reportVerbs) && strings.Contains(t, "reporte")
		},
		extract: extractCreateReport,
	},
	{
		name: "show_status",
		match: func(t string) bool {
			return containsAny(t, statusWords)
		},
		extract: func(string) *PendingAction {
			return &PendingAction{Action: ActionShowStatus}
		},
	},
}

// Classify maps a raw user message to a candidate action, or nil when no
// rule matches. It is pure: it never touches external state and only ever
// produces a candidate, which must be validated by the confirmation builder
// before anything runs.
func Classify(raw string) *PendingAction {
	text := Normalize(raw)
	if text == "" {
		return nil
	}

	for _, r := range rules {
		if r.match(text) {
			return r.extract(text)
		}
	}

	return nil
}

// Normalize lower-cases, strips diacritics and punctuation, and collapses
// whitespace. Keyword sets are written accent-less so that "oxígeno" and
// "oxigeno" match the same rule.
func Normalize(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// extractTankRef captures the token following the word "tanque", which is
// how users reference a tank ("elimina el tanque 004"). Resolution against
// real names is case-insensitive substring matching, so a partial token is
// enough.
func extractTankRef(text string) string {
	m := tankRefPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractAfterTo captures everything after a standalone "a" or "por"
// following the tank reference (or anywhere, when no tank is referenced).
// The capture is deliberately greedy to the end of the message: names and
// locations may contain spaces.
func extractAfterTo(text string) string {
	rest := text
	if loc := tankRefPattern.FindStringIndex(text); loc != nil {
		rest = text[loc[1]:]
	}
	m := afterToPattern.FindStringSubmatch(rest)
	if len(m) < 2 {
		m = afterToPattern.FindStringSubmatch(text)
	}
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractCreateSensors(text string) *PendingAction {
	types := extractSensorTypes(text)
	if containsAny(text, allTypeWords) {
		types = append([]entity.SensorType{}, entity.AllSensorTypes...)
	}

	// No type named and no "all" marker: stay silent instead of guessing.
	if len(types) == 0 {
		return nil
	}

	return &PendingAction{
		Action: ActionCreateSensors,
		CreateSensors: &CreateSensorsParams{
			Types:    types,
			TankName: extractTankRef(text),
		},
	}
}

func extractSensorTypes(text string) []entity.SensorType {
	var types []entity.SensorType
	if tempPattern.MatchString(text) {
		types = append(types, entity.SensorTypeTemperature)
	}
	if phPattern.MatchString(text) {
		types = append(types, entity.SensorTypePH)
	}
	if oxygenPattern.MatchString(text) {
		types = append(types, entity.SensorTypeOxygen)
	}
	return types
}

func extractEditLocation(text string) *PendingAction {
	return &PendingAction{
		Action: ActionEditTank,
		EditTank: &EditTankParams{
			TankName:    extractTankRef(text),
			NewLocation: extractAfterTo(text),
		},
	}
}

func extractEditName(text string) *PendingAction {
	return &PendingAction{
		Action: ActionEditTank,
		EditTank: &EditTankParams{
			TankName: extractTankRef(text),
			NewName:  extractAfterTo(text),
		},
	}
}

func extractDeleteSensor(text string) *PendingAction {
	sensorType := entity.SensorTypeTemperature
	if detected := extractSensorTypes(text); len(detected) > 0 {
		sensorType = detected[0]
	}

	return &PendingAction{
		Action: ActionDeleteSensor,
		DeleteSensor: &DeleteSensorParams{
			Type:     sensorType,
			TankName: extractTankRef(text),
		},
	}
}

func extractCreateReport(text string) *PendingAction {
	reportRange := entity.ReportRangeToday
	if strings.Contains(text, "semana") {
		reportRange = entity.ReportRangeWeek
	} else if strings.Contains(text, "mes") {
		reportRange = entity.ReportRangeMonth
	}

	return &PendingAction{
		Action:       ActionCreateReport,
		CreateReport: &CreateReportParams{Range: reportRange},
	}
}
