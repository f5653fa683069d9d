package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReserverClientStandard(t *testing.T) {
	client := &Client{ID: 2, Nom: "Alaoui", Prenom: "Sara", TypeClient: TypeClientStandard}
	chambre := chambre101()

	r := client.Reserver(chambre, jour("2030-01-01"), jour("2030-01-04"))

	assert.Equal(t, TypeReservationStandard, r.TypeReservation)
	assert.Equal(t, StatutEnAttente, r.Statut)
	assert.Equal(t, client.ID, r.ClientID)
	assert.Equal(t, chambre.ID, r.ChambreID)
	assert.Nil(t, r.Remise)
	assert.Nil(t, r.Plateforme)
}

func TestReserverClientVIPProduitUneReservationOnline(t *testing.T) {
	remise := 0.15
	client := &Client{ID: 2, Nom: "Alaoui", Prenom: "Sara", TypeClient: TypeClientVIP, Remise: &remise}

	r := client.Reserver(chambre101(), jour("2030-01-01"), jour("2030-01-04"))

	assert.Equal(t, TypeReservationOnline, r.TypeReservation)
	assert.NotNil(t, r.Remise)
	assert.Equal(t, 0.15, *r.Remise)
	assert.NotNil(t, r.Plateforme)
	assert.Equal(t, PlateformeSiteWeb, *r.Plateforme)
}

func TestAfficherClientVIP(t *testing.T) {
	remise := 0.15
	client := &Client{
		ID: 2, Nom: "Alaoui", Prenom: "Sara",
		Email: "sara@example.com", Telephone: "0612345678",
		TypeClient: TypeClientVIP, Remise: &remise,
	}
	out := client.Afficher()
	assert.Contains(t, out, "Sara Alaoui")
	assert.Contains(t, out, "VIP (15%)")
}

func TestAfficherSuite(t *testing.T) {
	suiteNom := "Suite Royale"
	pieces := 3
	jacuzzi := true
	suite := &Chambre{
		ID: 4, Numero: 201, Prix: 1800, TypeChambre: TypeChambreSuite,
		SuiteNom: &suiteNom, NombrePieces: &pieces, Jacuzzi: &jacuzzi,
	}
	out := suite.Afficher()
	assert.Contains(t, out, "Suite 201")
	assert.Contains(t, out, "Suite Royale")
	assert.Contains(t, out, "3 pièces")
	assert.Contains(t, out, "Jacuzzi: Oui")
}
