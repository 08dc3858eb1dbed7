// models/contact.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estados de un contacto. Solo herramientas administrativas externas
// cambian el estado; esta API nunca lo transiciona.
const (
	EstadoNuevo      = "nuevo"
	EstadoContactado = "contactado"
	EstadoCerrado    = "cerrado"
)

// Contact represents the contacts table (one contact-form submission)
type Contact struct {
	ContactID string    `gorm:"primaryKey;column:contact_id;type:varchar(36)" json:"contact_id"`
	Nombre    string    `gorm:"column:nombre;type:varchar(50);not null" json:"nombre"`
	Empresa   string    `gorm:"column:empresa;type:varchar(255);not null" json:"empresa"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;index" json:"email"`
	Telefono  string    `gorm:"column:telefono;type:varchar(32);not null" json:"telefono"`
	Mensaje   string    `gorm:"column:mensaje;type:text;not null" json:"mensaje"`
	Estado    string    `gorm:"column:estado;type:enum('nuevo','contactado','cerrado');default:'nuevo'" json:"estado"`
	IP        string    `gorm:"column:ip;type:varchar(45)" json:"ip,omitempty"`
	CreateAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate assigns the id and defaults before the insert.
func (ct *Contact) BeforeCreate(tx *gorm.DB) error {
	if ct.ContactID == "" {
		ct.ContactID = uuid.NewString()
	}
	if ct.Estado == "" {
		ct.Estado = EstadoNuevo
	}
	return nil
}

// ContactResponse is the admin-facing view of a contact. The originating
// IP is captured for audit only and never leaves the server.
type ContactResponse struct {
	ContactID string    `json:"contact_id"`
	Nombre    string    `json:"nombre"`
	Empresa   string    `json:"empresa"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Mensaje   string    `json:"mensaje"`
	Estado    string    `json:"estado"`
	CreateAt  time.Time `json:"create_at"`
}

func (ct *Contact) ToResponse() ContactResponse {
	return ContactResponse{
		ContactID: ct.ContactID,
		Nombre:    ct.Nombre,
		Empresa:   ct.Empresa,
		Email:     ct.Email,
		Telefono:  ct.Telefono,
		Mensaje:   ct.Mensaje,
		Estado:    ct.Estado,
		CreateAt:  ct.CreateAt,
	}
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Nombre   string `json:"nombre"`
	Empresa  string `json:"empresa"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Mensaje  string `json:"mensaje"`
}
