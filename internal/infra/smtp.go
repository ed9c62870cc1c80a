package infra

import (
	"fmt"
	"net/smtp"

	"github.com/TRABAJOSUNI2025/maintenance-system/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends transactional mail through the configured SMTP relay.
// When no SMTP host is configured (local development) sends become no-ops.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPassword,
		from: cfg.SMTPFrom,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	if m.host == "" {
		return nil
	}
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	return e.Send(addr, smtp.PlainAuth("", m.user, m.pass, m.host))
}

// EnviarBienvenida greets a freshly registered client.
func (m *Mailer) EnviarBienvenida(destinatario, nombre string) error {
	body := fmt.Sprintf(
		"Hola %s,\n\nTu cuenta en SIGEMAVE fue creada exitosamente. "+
			"Ya puedes registrar tus vehículos y solicitar servicios de mantenimiento.\n\n"+
			"Equipo SIGEMAVE", nombre)
	return m.send(destinatario, "Bienvenido a SIGEMAVE", body)
}

// EnviarTicketCreado confirms a new service request.
func (m *Mailer) EnviarTicketCreado(destinatario, nombre, codTicket, tipoServicio, fecha string) error {
	body := fmt.Sprintf(
		"Hola %s,\n\nTu solicitud de %s fue registrada con el ticket %s para el %s. "+
			"Te avisaremos cuando un operario inicie el trabajo.\n\n"+
			"Equipo SIGEMAVE", nombre, tipoServicio, codTicket, fecha)
	return m.send(destinatario, fmt.Sprintf("Ticket %s registrado", codTicket), body)
}
