package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"zyph-contact-api/controllers"
	"zyph-contact-api/models"
)

func newAdminRouter(store *fakeContactStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := controllers.NewAdminController(store)
	router.GET("/api/admin/stats", admin.GetStats)
	router.GET("/api/admin/contacts", admin.GetContacts)
	return router
}

func seedContacts(store *fakeContactStore, n int) {
	for i := 0; i < n; i++ {
		estado := models.EstadoNuevo
		createAt := time.Now()
		if i%2 == 1 {
			estado = models.EstadoContactado
			createAt = time.Now().AddDate(0, 0, -30)
		}
		store.contacts = append(store.contacts, models.Contact{
			ContactID: fmt.Sprintf("id-%d", i),
			Nombre:    fmt.Sprintf("Contacto %d", i),
			Empresa:   "Acme SA",
			Email:     fmt.Sprintf("c%d@acme.com", i),
			Telefono:  "+595211234567",
			Mensaje:   "Quisiera más información.",
			Estado:    estado,
			IP:        "203.0.113.9",
			CreateAt:  createAt,
		})
	}
}

func adminGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetStats(t *testing.T) {
	store := &fakeContactStore{}
	seedContacts(store, 10) // 5 nuevos (recent), 5 contactados (old)
	router := newAdminRouter(store)

	w := adminGet(router, "/api/admin/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["total"].(float64) != 10 {
		t.Errorf("total = %v, want 10", body["total"])
	}
	if body["nuevos"].(float64) != 5 {
		t.Errorf("nuevos = %v, want 5", body["nuevos"])
	}
	if body["ultimaSemana"].(float64) != 5 {
		t.Errorf("ultimaSemana = %v, want 5", body["ultimaSemana"])
	}
	if body["procesados"].(float64) != 5 {
		t.Errorf("procesados = %v, want 5", body["procesados"])
	}
}

func TestGetContactsPageBeyondRange(t *testing.T) {
	store := &fakeContactStore{}
	seedContacts(store, 5)
	router := newAdminRouter(store)

	w := adminGet(router, "/api/admin/contacts?page=3&limit=10")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	body := decodeBody(t, w)
	contacts, _ := body["contacts"].([]interface{})
	if len(contacts) != 0 {
		t.Errorf("contacts on page 3 = %d, want 0", len(contacts))
	}

	pagination := body["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 5 {
		t.Errorf("pagination.total = %v, want 5", pagination["total"])
	}
	if pagination["pages"].(float64) != 1 {
		t.Errorf("pagination.pages = %v, want 1", pagination["pages"])
	}
}

func TestGetContactsRedactsSourceAddress(t *testing.T) {
	store := &fakeContactStore{}
	seedContacts(store, 1)
	router := newAdminRouter(store)

	w := adminGet(router, "/api/admin/contacts")
	body := decodeBody(t, w)

	contacts := body["contacts"].([]interface{})
	if len(contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(contacts))
	}
	contact := contacts[0].(map[string]interface{})
	if _, present := contact["ip"]; present {
		t.Error("listing must not expose the source address")
	}
	if contact["email"] != "c0@acme.com" {
		t.Errorf("email = %v", contact["email"])
	}
}

func TestGetContactsDefaultsLimit(t *testing.T) {
	store := &fakeContactStore{}
	seedContacts(store, 3)
	router := newAdminRouter(store)

	w := adminGet(router, "/api/admin/contacts?limit=-4")
	body := decodeBody(t, w)

	pagination := body["pagination"].(map[string]interface{})
	if pagination["limit"].(float64) != 10 {
		t.Errorf("limit = %v, want default 10", pagination["limit"])
	}
	if pagination["page"].(float64) != 1 {
		t.Errorf("page = %v, want 1", pagination["page"])
	}
}
