package services

import (
	"testing"
	"time"

	"gestion-hotel/models"
	"gestion-hotel/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

// dans returns today+n as a yyyy-MM-dd string.
func dans(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

func seedClient(t *testing.T, db *gorm.DB) *models.Client {
	t.Helper()
	client := &models.Client{
		Nom: "Alaoui", Prenom: "Sara",
		Email: "sara@example.com", Telephone: "0612345678",
		TypeClient: models.TypeClientStandard,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func seedChambre(t *testing.T, db *gorm.DB, numero int, prix float64) *models.Chambre {
	t.Helper()
	chambre := &models.Chambre{Numero: numero, Prix: prix, TypeChambre: models.TypeChambreSimple}
	require.NoError(t, db.Create(chambre).Error)
	return chambre
}

func seedEmploye(t *testing.T, db *gorm.DB) *models.Employe {
	t.Helper()
	employe := &models.Employe{Nom: "Benali", Poste: "Réceptionniste", Salaire: 6000}
	require.NoError(t, db.Create(employe).Error)
	return employe
}

func requireAPIError(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.Status)
}
