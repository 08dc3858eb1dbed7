package utils

import (
	"strings"
	"testing"

	"zyph-contact-api/models"
)

func validRequest() models.ContactRequest {
	return models.ContactRequest{
		Nombre:   "Ana García",
		Empresa:  "Acme SA",
		Email:    "ana@acme.com",
		Telefono: "+595 (21) 123-4567",
		Mensaje:  "Quisiera más información sobre sus servicios.",
	}
}

func TestValidateContactRequestAccepts(t *testing.T) {
	cases := map[string]func(*models.ContactRequest){
		"valid":              func(r *models.ContactRequest) {},
		"name min length":    func(r *models.ContactRequest) { r.Nombre = "Al" },
		"name max length":    func(r *models.ContactRequest) { r.Nombre = strings.Repeat("a", 50) },
		"short email":        func(r *models.ContactRequest) { r.Email = "a@b.co" },
		"plain digits phone": func(r *models.ContactRequest) { r.Telefono = "12345" },
		"formatted phone":    func(r *models.ContactRequest) { r.Telefono = "+595 (21) 123-4567" },
		"message min length": func(r *models.ContactRequest) { r.Mensaje = strings.Repeat("m", 10) },
		"message max length": func(r *models.ContactRequest) { r.Mensaje = strings.Repeat("m", 1000) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			if ok, msg := ValidateContactRequest(&req); !ok {
				t.Errorf("expected valid, got %q", msg)
			}
		})
	}
}

func TestValidateContactRequestRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.ContactRequest)
		wantMsg string
	}{
		{"missing nombre", func(r *models.ContactRequest) { r.Nombre = "" }, "Todos los campos son obligatorios"},
		{"missing empresa", func(r *models.ContactRequest) { r.Empresa = "" }, "Todos los campos son obligatorios"},
		{"missing email", func(r *models.ContactRequest) { r.Email = "" }, "Todos los campos son obligatorios"},
		{"missing telefono", func(r *models.ContactRequest) { r.Telefono = "" }, "Todos los campos son obligatorios"},
		{"missing mensaje", func(r *models.ContactRequest) { r.Mensaje = "" }, "Todos los campos son obligatorios"},
		{"name too short", func(r *models.ContactRequest) { r.Nombre = "A" }, "El nombre debe tener entre 2 y 50 caracteres"},
		{"name too long", func(r *models.ContactRequest) { r.Nombre = strings.Repeat("a", 51) }, "El nombre debe tener entre 2 y 50 caracteres"},
		{"bad email", func(r *models.ContactRequest) { r.Email = "not-an-email" }, "El formato del email no es válido"},
		{"leading zero phone", func(r *models.ContactRequest) { r.Telefono = "0123" }, "El formato del teléfono no es válido"},
		{"phone too long", func(r *models.ContactRequest) { r.Telefono = "12345678901234567" }, "El formato del teléfono no es válido"},
		{"message too short", func(r *models.ContactRequest) { r.Mensaje = strings.Repeat("m", 9) }, "El mensaje debe tener entre 10 y 1000 caracteres"},
		{"message too long", func(r *models.ContactRequest) { r.Mensaje = strings.Repeat("m", 1001) }, "El mensaje debe tener entre 10 y 1000 caracteres"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			ok, msg := ValidateContactRequest(&req)
			if ok {
				t.Fatal("expected rejection")
			}
			if msg != tc.wantMsg {
				t.Errorf("got message %q, want %q", msg, tc.wantMsg)
			}
		})
	}
}

func TestValidationOrderStopsAtFirstRule(t *testing.T) {
	// Both the name and the message are wrong; only the name rule reports.
	req := validRequest()
	req.Nombre = "A"
	req.Mensaje = "corto"

	ok, msg := ValidateContactRequest(&req)
	if ok {
		t.Fatal("expected rejection")
	}
	if msg != "El nombre debe tener entre 2 y 50 caracteres" {
		t.Errorf("expected the name rule first, got %q", msg)
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("+595 (21) 123-4567"); got != "+595211234567" {
		t.Errorf("got %q", got)
	}
}
