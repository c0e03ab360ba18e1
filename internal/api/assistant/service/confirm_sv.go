package assistantService

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"AquaBackend/internal/entity"
	"AquaBackend/pkg/nlp"
)

// confirmOutcome is the result of validating a classified candidate against
// the live snapshot. Terminal outcomes need no confirmation: either nothing
// will be mutated (reads, no-ops) or the request is impossible as stated.
// Non-terminal outcomes carry the resolved action that will run on "sí".
type confirmOutcome struct {
	Message  string
	Resolved *nlp.PendingAction
	Terminal bool
}

// Only three-digit names count toward the sequence; anything else is a
// manually renamed tank and is ignored when proposing the next name.
var tankSeqPattern = regexp.MustCompile(`(?i)^tanque (\d{3})$`)

// buildConfirmation validates intent against snapshot, resolves names to
// IDs and produces either a confirmation prompt or a terminal reply. It is
// the only producer of actions the dispatcher will accept.
func (s *assistantService) buildConfirmation(intent *nlp.PendingAction, snapshot entity.UserInfrastructure) confirmOutcome {
	switch intent.Action {
	case nlp.ActionShowStatus:
		return confirmOutcome{Message: renderStatus(snapshot), Terminal: true}
	case nlp.ActionCreateTank:
		return buildCreateTank(intent, snapshot)
	case nlp.ActionEditTank:
		return buildEditTank(intent, snapshot)
	case nlp.ActionDeleteTank:
		return buildDeleteTank(intent, snapshot)
	case nlp.ActionCreateSensors:
		return buildCreateSensors(intent, snapshot)
	case nlp.ActionDeleteSensor:
		return buildDeleteSensor(intent, snapshot)
	case nlp.ActionCreateReport:
		return buildCreateReport(intent, snapshot)
	default:
		return confirmOutcome{Message: helpMessage(), Terminal: true}
	}
}

func buildCreateTank(intent *nlp.PendingAction, snapshot entity.UserInfrastructure) confirmOutcome {
	proposed := nextTankName(snapshot)
	intent.CreateTank.ProposedName = proposed

	return confirmOutcome{
		Message:  fmt.Sprintf("Voy a crear el tanque \"%s\". ¿Confirmas? (sí/no)", proposed),
		Resolved: intent,
	}
}

func buildEditTank(intent *nlp.PendingAction, snapshot entity.UserInfrastructure) confirmOutcome {
	params := intent.EditTank
	if params.NewName == "" && params.NewLocation == "" {
		return confirmOutcome{
			Message:  "❌ No entendí qué quieres cambiar. Indica el nuevo nombre o la nueva ubicación, por ejemplo: \"cambia el nombre del tanque 004 a Estanque Norte\".",
			Terminal: true,
		}
	}

	target, ok := findTank(snapshot, params.TankName)
	if !ok {
		return confirmOutcome{Message: tankNotFoundMessage(params.TankName), Terminal: true}
	}

	params.TankID = target.Tank.ID
	params.ResolvedName = target.Tank.Name

	var prompt string
	if params.NewLocation != "" {
		prompt = fmt.Sprintf("Voy a cambiar la ubicación de \"%s\" a \"%s\". ¿Confirmas? (sí/no)",
			target.Tank.Name, params.NewLocation)
	} else {
		prompt = fmt.Sprintf("Voy a renombrar \"%s\" a \"%s\". ¿Confirmas? (sí/no)",
			target.Tank.Name, params.NewName)
	}

	return confirmOutcome{Message: prompt, Resolved: intent}
}

func buildDeleteTank(intent *nlp.PendingAction, snapshot entity.UserInfrastructure) confirmOutcome {
	params := intent.DeleteTank

	target, ok := findTank(snapshot, params.TankName)
	if !ok {
		return confirmOutcome{Message: tankNotFoundMessage(params.TankName), Terminal: true}
	}

	// Sensors block the delete: they must be removed first so that no
	// hardware assignment is silently orphaned.
	if len(target.Sensors) > 0 {
		return confirmOutcome{
			Message: fmt.Sprintf("❌ El tanque \"%s\" tiene %d sensor(es) instalados. Elimina primero sus sensores y vuelve a intentarlo.",
				target.Tank.Name, len(target.Sensors)),
			Terminal: true,
		}
	}

	params.TankID = target.Tank.ID
	params.ResolvedName = target.Tank.Name

	return confirmOutcome{
		Message:  fmt.Sprintf("Voy a eliminar el tanque \"%s\". Esta acción no se puede deshacer. ¿Confirmas? (sí/no)", target.Tank.Name),
		Resolved: intent,
	}
}

func buildCreateSensors(intent *nlp.PendingAction, snapshot entity.UserInfrastructure) confirmOutcome {
	params := intent.CreateSensors

	if params.TankName == "" {
		return confirmOutcome{
			Message:  "❌ Necesito saber en qué tanque instalar los sensores, por ejemplo: \"agrega un sensor de pH al tanque 004\".",
			Terminal: true,
		}
	}

	target, ok := findTank(snapshot, params.TankName)
	if !ok {
		return confirmOutcome{Message: tankNotFoundMessage(params.TankName), Terminal: true}
	}

	present := make(map[entity.SensorType]bool, len(target.Sensors))
	for _, sn := range target.Sensors {
		present[sn.Type] = true
	}

	missing := make([]entity.SensorType, 0, len(params.Types))
	for _, t := range params.Types {
		if !present[t] {
			missing = append(missing, t)
		}
	}

	if len(missing) == 0 {
		return confirmOutcome{
			Message:  fmt.Sprintf("✅ El tanque \"%s\" ya tiene todos los sensores solicitados. No hay nada que agregar.", target.Tank.Name),
			Terminal: true,
		}
	}

	params.TankID = target.Tank.ID
	params.ResolvedName = target.Tank.Name
	params.MissingTypes = missing

	return confirmOutcome{
		Message: fmt.Sprintf("Voy a instalar en \"%s\" los sensores: %s. ¿Confirmas? (sí/no)",
			target.Tank.Name, joinTypeLabels(missing)),
		Resolved: intent,
	}
}

func buildDeleteSensor(intent *nlp.PendingAction, snapshot entity.UserInfrastructure) confirmOutcome {
	params := intent.DeleteSensor

	if len(snapshot.Tanks) == 0 {
		return confirmOutcome{Message: "❌ No tienes ningún tanque registrado.", Terminal: true}
	}

	var target entity.TankWithSensors
	if params.TankName == "" {
		target = snapshot.Tanks[0]
	} else {
		found, ok := findTank(snapshot, params.TankName)
		if !ok {
			return confirmOutcome{Message: tankNotFoundMessage(params.TankName), Terminal: true}
		}
		target = found
	}

	var match *entity.Sensor
	for i := range target.Sensors {
		if target.Sensors[i].Type == params.Type {
			match = &target.Sensors[i]
			break
		}
	}
	if match == nil {
		return confirmOutcome{
			Message: fmt.Sprintf("❌ El tanque \"%s\" no tiene un sensor de %s.",
				target.Tank.Name, params.Type.Label()),
			Terminal: true,
		}
	}

	params.TankID = target.Tank.ID
	params.ResolvedName = target.Tank.Name
	params.SensorID = match.ID
	params.SensorName = match.Name

	return confirmOutcome{
		Message: fmt.Sprintf("Voy a eliminar el sensor de %s (\"%s\") del tanque \"%s\". ¿Confirmas? (sí/no)",
			params.Type.Label(), match.Name, target.Tank.Name),
		Resolved: intent,
	}
}

func buildCreateReport(intent *nlp.PendingAction, snapshot entity.UserInfrastructure) confirmOutcome {
	params := intent.CreateReport

	if len(snapshot.Tanks) == 0 {
		return confirmOutcome{
			Message:  "❌ No tienes tanques registrados, así que no hay datos para un reporte.",
			Terminal: true,
		}
	}

	target := snapshot.Tanks[0]
	params.TankID = target.Tank.ID
	params.ResolvedName = target.Tank.Name
	params.SensorIDs = make([]string, 0, len(target.Sensors))
	for _, sn := range target.Sensors {
		params.SensorIDs = append(params.SensorIDs, sn.ID)
	}

	return confirmOutcome{
		Message: fmt.Sprintf("Voy a generar el reporte %s del tanque \"%s\". ¿Confirmas? (sí/no)",
			params.Range.Label(), target.Tank.Name),
		Resolved: intent,
	}
}

// findTank resolves a user-supplied reference against the snapshot by
// case-insensitive substring match; tanks are in creation order and the
// first match wins. An empty reference matches the first tank.
func findTank(snapshot entity.UserInfrastructure, ref string) (entity.TankWithSensors, bool) {
	needle := nlp.Normalize(ref)

	for _, t := range snapshot.Tanks {
		if strings.Contains(nlp.Normalize(t.Tank.Name), needle) {
			return t, true
		}
	}

	return entity.TankWithSensors{}, false
}

// nextTankName proposes the next name in the "Tanque NNN" sequence by
// taking the highest well-formed number currently in use.
func nextTankName(snapshot entity.UserInfrastructure) string {
	max := 0
	for _, t := range snapshot.Tanks {
		m := tankSeqPattern.FindStringSubmatch(strings.TrimSpace(t.Tank.Name))
		if len(m) < 2 {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}

	return fmt.Sprintf("Tanque %03d", max+1)
}

func tankNotFoundMessage(ref string) string {
	if ref == "" {
		return "❌ No encontré ese tanque. Revisa el nombre e inténtalo de nuevo."
	}
	return fmt.Sprintf("❌ No encontré ningún tanque que coincida con \"%s\".", ref)
}

func joinTypeLabels(types []entity.SensorType) string {
	labels := make([]string, 0, len(types))
	for _, t := range types {
		labels = append(labels, t.Label())
	}
	return strings.Join(labels, ", ")
}
