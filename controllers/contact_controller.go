// controllers/contact_controller.go - Contact form intake
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"zyph-contact-api/metrics"
	"zyph-contact-api/models"
	"zyph-contact-api/services"
)

type ContactController struct {
	Service *services.ContactService
}

func NewContactController(service *services.ContactService) *ContactController {
	return &ContactController{Service: service}
}

// SubmitContact handles POST /api/contact
func (cc *ContactController) SubmitContact(c *gin.Context) {
	metrics.ContactsReceivedTotal.Inc()

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ContactsRejectedTotal.Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Solicitud inválida",
		})
		return
	}

	contact, err := cc.Service.Submit(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			metrics.ContactsRejectedTotal.Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   validationErr.Message,
			})
		case errors.Is(err, services.ErrNotificationFailed):
			// The contact was stored; the emails were not all sent. Tell
			// the user something went wrong without losing the lead.
			metrics.ContactsAcceptedTotal.Inc()
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Error interno del servidor. Intenta nuevamente más tarde.",
			})
		default:
			log.Printf("contact submission failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Error interno del servidor. Intenta nuevamente más tarde.",
			})
		}
		return
	}

	metrics.ContactsAcceptedTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Mensaje enviado correctamente. Te contactaremos pronto.",
		"contactId": contact.ContactID,
	})
}
