// utils/validator.go - Contact form validation
package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"zyph-contact-api/models"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)

	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// ValidateEmail checks if email has a local@domain.tld shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone checks an international-dial-style number. Formatting
// characters (spaces, hyphens, parentheses) are stripped first.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// NormalizePhone removes the formatting characters allowed in input.
func NormalizePhone(phone string) string {
	return phoneStripper.Replace(phone)
}

// ValidateContactRequest checks the five contact fields in a fixed order
// and reports the first violated rule. It never aggregates errors.
func ValidateContactRequest(req *models.ContactRequest) (bool, string) {
	if req.Nombre == "" || req.Empresa == "" || req.Email == "" || req.Telefono == "" || req.Mensaje == "" {
		return false, "Todos los campos son obligatorios"
	}

	if n := utf8.RuneCountInString(req.Nombre); n < 2 || n > 50 {
		return false, "El nombre debe tener entre 2 y 50 caracteres"
	}

	if !ValidateEmail(req.Email) {
		return false, "El formato del email no es válido"
	}

	if !ValidatePhone(req.Telefono) {
		return false, "El formato del teléfono no es válido"
	}

	if n := utf8.RuneCountInString(req.Mensaje); n < 10 || n > 1000 {
		return false, "El mensaje debe tener entre 10 y 1000 caracteres"
	}

	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
