// controllers/admin_controller.go - Token-gated read access for admins
package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"zyph-contact-api/models"
	"zyph-contact-api/services"
)

type AdminController struct {
	Store services.ContactStore
}

func NewAdminController(store services.ContactStore) *AdminController {
	return &AdminController{Store: store}
}

// GetStats handles GET /api/admin/stats
func (ac *AdminController) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := ac.Store.CountAll(ctx)
	if err != nil {
		log.Printf("admin stats query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener estadísticas"})
		return
	}

	nuevos, err := ac.Store.CountByEstado(ctx, models.EstadoNuevo)
	if err != nil {
		log.Printf("admin stats query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener estadísticas"})
		return
	}

	ultimaSemana, err := ac.Store.CountSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		log.Printf("admin stats query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener estadísticas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":        total,
		"nuevos":       nuevos,
		"ultimaSemana": ultimaSemana,
		"procesados":   total - nuevos,
	})
}

// GetContacts handles GET /api/admin/contacts with page/limit pagination.
// Responses never include the originating IP.
func (ac *AdminController) GetContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = services.NormalizePagination(page, limit)

	contacts, total, err := ac.Store.List(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("admin contacts query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener contactos"})
		return
	}

	responses := make([]models.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, contacts[i].ToResponse())
	}

	pages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, gin.H{
		"contacts": responses,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}
