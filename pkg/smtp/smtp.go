package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendReportReady(userEmail string, reportName string, fileURL string) error
	SendAlertNotification(userEmail string, alertMessage string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		host: host,
		addr: host + ":587",
	}
}

func (s *smtp) SendReportReady(userEmail string, reportName string, fileURL string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Tu reporte está listo\r\n\r\nHola, tu reporte «%s» ya está disponible: %s",
		userEmail, reportName, fileURL))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message)
}

func (s *smtp) SendAlertNotification(userEmail string, alertMessage string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Alerta en tu infraestructura\r\n\r\n%s",
		userEmail, alertMessage))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message)
}
