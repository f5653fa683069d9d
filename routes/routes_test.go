package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestion-hotel/controllers"
	"gestion-hotel/models"
	"gestion-hotel/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Employe{},
		&models.Chambre{},
		&models.Reservation{},
	))

	router := SetupRouter(
		controllers.NewChambreController(services.NewChambreService(db)),
		controllers.NewClientController(services.NewClientService(db)),
		controllers.NewEmployeController(services.NewEmployeService(db)),
		controllers.NewReservationController(services.NewReservationService(db)),
	)
	return router, db
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func isoDate(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

func TestHealth(t *testing.T) {
	router, _ := setupTestRouter(t)
	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateChambreEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": 500.0, "typeChambre": "SIMPLE",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "SIMPLE", body["typeChambre"])
}

func TestCreateChambreValidationFailed(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": -5.0, "typeChambre": "SIMPLE",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation Failed", body["error"])
	assert.Equal(t, float64(400), body["status"])
	assert.NotEmpty(t, body["errors"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCreateChambreTypeInvalide(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": 500.0, "typeChambre": "DOUBLE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateChambreConflit(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": 500.0, "typeChambre": "SIMPLE",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": 700.0, "typeChambre": "SIMPLE",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Conflict", body["error"])
}

func TestCreateSuiteEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres/suite", gin.H{
		"numero": 201, "prix": 1800.0, "suiteNom": "Suite Royale", "nombrePieces": 3, "jacuzzi": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "SUITE", body["typeChambre"])
	assert.Equal(t, "Suite Royale", body["suiteNom"])
}

func TestGetChambreIntrouvableEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/chambres/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "/api/chambres/999", body["path"])
}

func TestDeleteChambreEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": 500.0, "typeChambre": "SIMPLE",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint(decode(t, w)["id"].(float64))

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/chambres/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/chambres/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaginationEnvelope(t *testing.T) {
	router, _ := setupTestRouter(t)
	for i := 0; i < 3; i++ {
		w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
			"numero": 101 + i, "prix": 500.0, "typeChambre": "SIMPLE",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/api/chambres?page=0&size=2&sortBy=numero", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(3), body["totalElements"])
	assert.Equal(t, float64(2), body["totalPages"])
	assert.Len(t, body["content"], 2)
}

// Full reservation flow through the API: create the referenced resources,
// book, compute the amount, confirm and cancel.
func TestReservationFlow(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": 500.0, "typeChambre": "SIMPLE",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	chambreID := decode(t, w)["id"].(float64)

	w = doJSON(router, http.MethodPost, "/api/clients", gin.H{
		"nom": "Alaoui", "prenom": "Sara", "email": "sara@example.com", "telephone": "0612345678",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	clientID := decode(t, w)["id"].(float64)

	w = doJSON(router, http.MethodPost, "/api/employees", gin.H{
		"nom": "Benali", "poste": "Réceptionniste", "salaire": 6000.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	employeID := decode(t, w)["id"].(float64)

	w = doJSON(router, http.MethodPost, "/api/reservations", gin.H{
		"dateDebut": isoDate(0), "dateFin": isoDate(3),
		"clientId": clientID, "chambreId": chambreID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	resID := body["id"].(float64)
	assert.Equal(t, "EN_ATTENTE", body["statut"])

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/reservations/%.0f/montant", resID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1500), decode(t, w)["montant"])

	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/reservations/%.0f/confirmer?employeId=%.0f", resID, employeID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "CONFIRMEE", body["statut"])
	assert.Equal(t, employeID, body["employeId"])

	// cancelling without an actor clears the employee reference
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/reservations/%.0f/annuler", resID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "ANNULEE", body["statut"])
	assert.Nil(t, body["employeId"])

	w = doJSON(router, http.MethodGet, "/api/reservations/statut/ANNULEE", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/reservations/%.0f", resID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestOnlineReservationFlow(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/chambres", gin.H{
		"numero": 101, "prix": 500.0, "typeChambre": "SIMPLE",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	chambreID := decode(t, w)["id"].(float64)

	w = doJSON(router, http.MethodPost, "/api/clients/vip", gin.H{
		"nom": "Alaoui", "prenom": "Sara", "email": "sara@example.com", "telephone": "0612345678",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	clientID := body["id"].(float64)
	assert.Equal(t, "VIP", body["typeClient"])
	assert.Equal(t, 0.15, body["remise"])

	w = doJSON(router, http.MethodPost, "/api/reservations/online", gin.H{
		"dateDebut": isoDate(0), "dateFin": isoDate(3),
		"clientId": clientID, "chambreId": chambreID,
		"plateforme": "Booking", "remise": 0.2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resID := decode(t, w)["id"].(float64)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/reservations/%.0f/montant", resID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1200.0, decode(t, w)["montant"].(float64), 1e-9)
}

func TestReservationDatesInvalidesEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)

	require.NoError(t, db.Create(&models.Chambre{Numero: 101, Prix: 500}).Error)
	require.NoError(t, db.Create(&models.Client{Nom: "Alaoui", Email: "sara@example.com"}).Error)

	w := doJSON(router, http.MethodPost, "/api/reservations", gin.H{
		"dateDebut": isoDate(3), "dateFin": isoDate(1),
		"clientId": 1, "chambreId": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad Request", decode(t, w)["error"])
}

func TestReservationsParPlageDeDates(t *testing.T) {
	router, db := setupTestRouter(t)

	require.NoError(t, db.Create(&models.Chambre{Numero: 101, Prix: 500}).Error)
	require.NoError(t, db.Create(&models.Client{Nom: "Alaoui", Email: "sara@example.com"}).Error)

	w := doJSON(router, http.MethodPost, "/api/reservations", gin.H{
		"dateDebut": isoDate(1), "dateFin": isoDate(4),
		"clientId": 1, "chambreId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/reservations/dates?start=%s&end=%s", isoDate(0), isoDate(2)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doJSON(router, http.MethodGet, "/api/reservations/dates?start="+isoDate(0), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
