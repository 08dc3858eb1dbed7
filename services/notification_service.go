// services/notification_service.go - Outbound email notifications
package services

import (
	"context"
	"fmt"
	"time"

	"zyph-contact-api/config"
	"zyph-contact-api/models"
)

// Notifier dispatches the notifications for one stored contact.
type Notifier interface {
	NotifyContact(ctx context.Context, contact *models.Contact) error
}

// NotificationService sends two emails per contact: a notification to the
// admin inbox and a confirmation to the submitter. Both sends are started
// together and the result is success only if both succeed. There is no
// retry and no queue; one attempt per contact.
type NotificationService struct {
	adminTo string

	// seam for tests, defaults to the injected mailer's Send
	sendFunc func(to []string, subject, html string) error
}

func NewNotificationService(mailer *config.Mailer, cfg config.Config) *NotificationService {
	return &NotificationService{
		adminTo:  cfg.AdminNotifyAddress(),
		sendFunc: mailer.Send,
	}
}

func (s *NotificationService) NotifyContact(ctx context.Context, contact *models.Contact) error {
	adminSubject, adminHTML := s.buildAdminEmail(contact)
	confirmSubject, confirmHTML := s.buildConfirmationEmail(contact)

	errc := make(chan error, 2)
	go func() {
		errc <- s.sendFunc([]string{s.adminTo}, adminSubject, adminHTML)
	}()
	go func() {
		errc <- s.sendFunc([]string{contact.Email}, confirmSubject, confirmHTML)
	}()

	var firstErr error
	for i := 0; i < 2; i++ {
		select {
		case err := <-errc:
			if err != nil && firstErr == nil {
				firstErr = err
			}
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrNotificationFailed, ctx.Err())
		}
	}

	if firstErr != nil {
		return fmt.Errorf("%w: %v", ErrNotificationFailed, firstErr)
	}
	return nil
}

func (s *NotificationService) buildAdminEmail(contact *models.Contact) (string, string) {
	subject := fmt.Sprintf("Nuevo contacto: %s - %s", contact.Nombre, contact.Empresa)
	paragraphs := []string{
		"Se recibió un nuevo mensaje desde el formulario de contacto del sitio web.",
	}
	meta := []emailMetaItem{
		{Label: "Nombre", Value: contact.Nombre},
		{Label: "Empresa", Value: contact.Empresa},
		{Label: "Email", Value: contact.Email},
		{Label: "Teléfono", Value: contact.Telefono},
		{Label: "Mensaje", Value: contact.Mensaje},
		{Label: "Fecha", Value: contact.CreateAt.Format(time.RFC3339)},
		{Label: "IP de origen", Value: contact.IP},
	}
	footer := fmt.Sprintf("ID de contacto: %s", contact.ContactID)
	return subject, buildEmailTemplate(subject, paragraphs, meta, footer)
}

func (s *NotificationService) buildConfirmationEmail(contact *models.Contact) (string, string) {
	subject := "Hemos recibido tu mensaje - Zyph Technologies"
	paragraphs := []string{
		fmt.Sprintf("Hola %s,", contact.Nombre),
		"Gracias por contactar a Zyph Technologies. Recibimos tu mensaje y te responderemos a la brevedad.",
		"Este es un resumen de lo que nos enviaste:",
	}
	meta := []emailMetaItem{
		{Label: "Empresa", Value: contact.Empresa},
		{Label: "Teléfono", Value: contact.Telefono},
		{Label: "Mensaje", Value: contact.Mensaje},
		{Label: "Fecha", Value: contact.CreateAt.Format(time.RFC3339)},
	}
	footer := "Si no enviaste este mensaje, puedes ignorar este correo."
	return subject, buildEmailTemplate(subject, paragraphs, meta, footer)
}
