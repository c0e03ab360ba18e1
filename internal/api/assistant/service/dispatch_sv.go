package assistantService

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"AquaBackend/internal/api/report"
	"AquaBackend/internal/api/sensor"
	"AquaBackend/internal/api/tank"
	"AquaBackend/internal/entity"
	contextPkg "AquaBackend/pkg/context"
	"AquaBackend/pkg/nlp"
)

// execute runs a confirmed action against the CRUD collaborators and always
// returns displayable text. Success and failure are both formatted here, at
// the outer boundary; the per-action handlers below stay machine-checkable
// by returning plain errors.
func (s *assistantService) execute(ctx context.Context, user entity.UserLoginData, action *nlp.PendingAction) string {
	message, err := s.dispatch(ctx, user, action)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    user.ID,
			"action":     string(action.Action),
			"error":      err.Error(),
		}).Error("Confirmed action failed")
		return fmt.Sprintf("❌ No pude completar la operación: %s", err.Error())
	}

	return "✅ " + message
}

func (s *assistantService) dispatch(ctx context.Context, user entity.UserLoginData, action *nlp.PendingAction) (string, error) {
	switch action.Action {
	case nlp.ActionCreateTank:
		return s.runCreateTank(ctx, user, action.CreateTank)
	case nlp.ActionEditTank:
		return s.runEditTank(ctx, user, action.EditTank)
	case nlp.ActionDeleteTank:
		return s.runDeleteTank(ctx, user, action.DeleteTank)
	case nlp.ActionCreateSensors:
		return s.runCreateSensors(ctx, user, action.CreateSensors)
	case nlp.ActionDeleteSensor:
		return s.runDeleteSensor(ctx, user, action.DeleteSensor)
	case nlp.ActionCreateReport:
		return s.runCreateReport(ctx, user, action.CreateReport)
	default:
		return "", fmt.Errorf("acción desconocida: %s", action.Action)
	}
}

func (s *assistantService) runCreateTank(ctx context.Context, user entity.UserLoginData, params *nlp.CreateTankParams) (string, error) {
	created, err := s.tankService.CreateTank(ctx, tank.CreateTankRequest{
		UserID: user.ID,
		Name:   params.ProposedName,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("He creado el tanque \"%s\".", created.Name), nil
}

func (s *assistantService) runEditTank(ctx context.Context, user entity.UserLoginData, params *nlp.EditTankParams) (string, error) {
	updated, err := s.tankService.UpdateTank(ctx, params.TankID, user.ID, tank.UpdateTankRequest{
		Name:     params.NewName,
		Location: params.NewLocation,
	})
	if err != nil {
		return "", err
	}

	if params.NewLocation != "" {
		return fmt.Sprintf("He actualizado la ubicación de \"%s\" a \"%s\".", updated.Name, updated.Location), nil
	}
	return fmt.Sprintf("He renombrado el tanque a \"%s\".", updated.Name), nil
}

func (s *assistantService) runDeleteTank(ctx context.Context, user entity.UserLoginData, params *nlp.DeleteTankParams) (string, error) {
	if err := s.tankService.DeleteTank(ctx, params.TankID, user.ID); err != nil {
		return "", err
	}

	return fmt.Sprintf("He eliminado el tanque \"%s\".", params.ResolvedName), nil
}

func (s *assistantService) runCreateSensors(ctx context.Context, user entity.UserLoginData, params *nlp.CreateSensorsParams) (string, error) {
	created := make([]string, 0, len(params.MissingTypes))
	for _, t := range params.MissingTypes {
		_, err := s.sensorService.CreateSensor(ctx, sensor.CreateSensorRequest{
			UserID: user.ID,
			TankID: params.TankID,
			Type:   string(t),
		})
		if err != nil {
			if len(created) > 0 {
				return "", fmt.Errorf("instalé %s pero falló el sensor de %s: %w",
					joinTypeLabelStrings(created), t.Label(), err)
			}
			return "", err
		}
		created = append(created, t.Label())
	}

	return fmt.Sprintf("He instalado en \"%s\" los sensores: %s.",
		params.ResolvedName, joinTypeLabelStrings(created)), nil
}

func (s *assistantService) runDeleteSensor(ctx context.Context, user entity.UserLoginData, params *nlp.DeleteSensorParams) (string, error) {
	role := user.Role
	if role == "" {
		role = entity.RoleUser
	}

	if err := s.sensorService.DeleteSensor(ctx, params.SensorID, user.ID, role); err != nil {
		return "", err
	}

	return fmt.Sprintf("He eliminado el sensor de %s del tanque \"%s\".",
		params.Type.Label(), params.ResolvedName), nil
}

func (s *assistantService) runCreateReport(ctx context.Context, user entity.UserLoginData, params *nlp.CreateReportParams) (string, error) {
	created, err := s.reportService.CreateReport(ctx, report.CreateReportRequest{
		UserID:    user.ID,
		UserEmail: user.Email,
		TankID:    params.TankID,
		SensorIDs: params.SensorIDs,
		Range:     string(params.Range),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("He puesto en marcha el reporte %s del tanque \"%s\". Te avisaré por correo cuando \"%s\" esté listo.",
		params.Range.Label(), params.ResolvedName, created.Name), nil
}

func joinTypeLabelStrings(labels []string) string {
	return strings.Join(labels, ", ")
}
