// services/contact_service.go - Contact submission pipeline
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"zyph-contact-api/models"
	"zyph-contact-api/utils"
)

const (
	storeTimeout  = 10 * time.Second
	notifyTimeout = 30 * time.Second
)

// ContactService runs one submission through validate -> store -> notify.
//
// The failure policy is asymmetric on purpose: an invalid request never
// touches the store, a storage failure never triggers an email, and a
// notification failure never rolls back the stored contact. Losing a lead
// is worse than a lead without its emails.
type ContactService struct {
	Store    ContactStore
	Notifier Notifier
}

func NewContactService(store ContactStore, notifier Notifier) *ContactService {
	return &ContactService{Store: store, Notifier: notifier}
}

// Submit validates and persists one contact request, then dispatches the
// notification emails. On ErrNotificationFailed the returned contact is
// non-nil and already persisted.
func (s *ContactService) Submit(ctx context.Context, req *models.ContactRequest, sourceIP string) (*models.Contact, error) {
	if ok, msg := utils.ValidateContactRequest(req); !ok {
		return nil, &ValidationError{Message: msg}
	}

	contact := &models.Contact{
		Nombre:   utils.SanitizeInput(req.Nombre),
		Empresa:  utils.SanitizeInput(req.Empresa),
		Email:    utils.SanitizeInput(req.Email),
		Telefono: utils.SanitizeInput(req.Telefono),
		Mensaje:  utils.SanitizeInput(req.Mensaje),
		Estado:   models.EstadoNuevo,
		IP:       sourceIP,
	}

	storeCtx, cancelStore := context.WithTimeout(ctx, storeTimeout)
	defer cancelStore()
	if err := s.Store.Create(storeCtx, contact); err != nil {
		log.Printf("contact store failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	notifyCtx, cancelNotify := context.WithTimeout(ctx, notifyTimeout)
	defer cancelNotify()
	if err := s.Notifier.NotifyContact(notifyCtx, contact); err != nil {
		// The contact stays stored. The caller still gets an error so the
		// user knows the message may not have gone through.
		log.Printf("notification failed for contact %s: %v", contact.ContactID, err)
		return contact, err
	}

	return contact, nil
}
