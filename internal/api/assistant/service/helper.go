package assistantService

import (
	"fmt"
	"strings"

	"AquaBackend/internal/entity"
)

func helpMessage() string {
	return strings.Join([]string{
		"Puedo ayudarte con tu infraestructura. Prueba con:",
		"• \"crea un tanque\"",
		"• \"cambia el nombre del tanque 004 a Estanque Norte\"",
		"• \"elimina el tanque 004\"",
		"• \"agrega un sensor de pH al tanque 004\"",
		"• \"elimina el sensor de temperatura del tanque 004\"",
		"• \"genera el reporte de la semana\"",
		"• \"muéstrame el estado de mis tanques\"",
	}, "\n")
}

// renderStatus is the SHOW_STATUS reply: tank list with sensor counts plus
// the alert and report totals. Reads never go through confirmation.
func renderStatus(snapshot entity.UserInfrastructure) string {
	if len(snapshot.Tanks) == 0 {
		return "No tienes tanques registrados todavía. Dime \"crea un tanque\" para empezar."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tienes %d tanque(s):\n", len(snapshot.Tanks))
	for _, t := range snapshot.Tanks {
		fmt.Fprintf(&b, "• %s: %d sensor(es)", t.Tank.Name, len(t.Sensors))
		if len(t.Sensors) > 0 {
			labels := make([]string, 0, len(t.Sensors))
			for _, sn := range t.Sensors {
				labels = append(labels, sn.Type.Label())
			}
			fmt.Fprintf(&b, " (%s)", strings.Join(labels, ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Alertas abiertas: %d\n", snapshot.OpenAlertCount)
	fmt.Fprintf(&b, "Reportes generados: %d", snapshot.ReportCount)

	return b.String()
}
