package services

import (
	"net/http"
	"testing"

	"gestion-hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientValide(t *testing.T) {
	svc := NewClientService(newTestDB(t))

	client := &models.Client{Nom: "Alaoui", Prenom: "Sara", Email: "sara@example.com", Telephone: "0612345678"}
	require.NoError(t, svc.Create(client))
	assert.NotZero(t, client.ID)
	assert.Equal(t, models.TypeClientStandard, client.TypeClient)
	assert.Nil(t, client.Remise)
}

func TestCreateClientNomVide(t *testing.T) {
	svc := NewClientService(newTestDB(t))
	err := svc.Create(&models.Client{Nom: "   ", Email: "sara@example.com"})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestCreateClientEmailVide(t *testing.T) {
	svc := NewClientService(newTestDB(t))
	err := svc.Create(&models.Client{Nom: "Alaoui", Email: ""})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestCreateClientTelephoneInvalide(t *testing.T) {
	svc := NewClientService(newTestDB(t))
	err := svc.Create(&models.Client{Nom: "Alaoui", Email: "sara@example.com", Telephone: "abc"})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestCreateClientVIPRemiseParDefaut(t *testing.T) {
	svc := NewClientService(newTestDB(t))

	client := &models.Client{Nom: "Alaoui", Prenom: "Sara", Email: "sara@example.com", Telephone: "0612345678"}
	require.NoError(t, svc.CreateVIP(client))
	assert.Equal(t, models.TypeClientVIP, client.TypeClient)
	require.NotNil(t, client.Remise)
	assert.Equal(t, 0.15, *client.Remise)
}

func TestCreateClientVIPRemiseHorsBornes(t *testing.T) {
	svc := NewClientService(newTestDB(t))
	remise := 1.5
	err := svc.CreateVIP(&models.Client{Nom: "Alaoui", Email: "sara@example.com", Remise: &remise})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestUpdateClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db)
	client := seedClient(t, db)

	updated, err := svc.Update(client.ID, &models.Client{
		Nom: "Idrissi", Prenom: "Sara", Email: "sara@example.com", Telephone: "0612345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "Idrissi", updated.Nom)

	_, err = svc.Update(999, &models.Client{Nom: "Idrissi", Email: "x@example.com"})
	requireAPIError(t, err, http.StatusNotFound)
}

func TestDeleteClientSupprimeSesReservations(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db)
	resSvc := NewReservationService(db)

	client := seedClient(t, db)
	chambre := seedChambre(t, db, 101, 500)
	reservation, err := resSvc.CreateReservation(dans(1), dans(4), client.ID, chambre.ID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(client.ID))

	_, err = resSvc.GetByID(reservation.ID)
	requireAPIError(t, err, http.StatusNotFound)
	_, err = svc.GetByID(client.ID)
	requireAPIError(t, err, http.StatusNotFound)
}

func TestFindClientsByNom(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db)
	seedClient(t, db)

	found, err := svc.FindByNom("Alaoui")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := svc.FindByNom("Inconnu")
	require.NoError(t, err)
	assert.Empty(t, none)
}
