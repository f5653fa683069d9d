package services

import (
	"errors"
	"fmt"

	"gestion-hotel/models"
	"gestion-hotel/utils"

	"gorm.io/gorm"
)

var chambreSortColumns = map[string]string{
	"chambreId":   "id",
	"id":          "id",
	"numero":      "numero",
	"prix":        "prix",
	"typeChambre": "type_chambre",
}

type ChambreService struct {
	DB *gorm.DB
}

func NewChambreService(db *gorm.DB) *ChambreService {
	return &ChambreService{DB: db}
}

func (s *ChambreService) GetAll(page, size int, sortBy string) (Page[models.Chambre], error) {
	return paginate[models.Chambre](
		s.DB.Model(&models.Chambre{}),
		page, size,
		sortColumn(chambreSortColumns, sortBy),
	)
}

func (s *ChambreService) GetByID(id uint) (*models.Chambre, error) {
	var chambre models.Chambre
	if err := s.DB.First(&chambre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("chambre avec l'ID %d introuvable", id)
		}
		return nil, fmt.Errorf("failed to load chambre %d: %w", id, err)
	}
	return &chambre, nil
}

func (s *ChambreService) Create(chambre *models.Chambre) error {
	if chambre.Prix < 0 {
		return utils.BadRequest("le prix ne peut pas être négatif")
	}
	if chambre.Numero <= 0 {
		return utils.BadRequest("le numéro de chambre doit être positif")
	}
	if chambre.TypeChambre == "" {
		chambre.TypeChambre = models.TypeChambreSimple
	}

	if err := s.DB.Create(chambre).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			return utils.Conflict("la chambre numéro %d existe déjà", chambre.Numero)
		}
		return fmt.Errorf("failed to create chambre: %w", err)
	}
	return nil
}

// CreateSuite persists the SUITE variant; the discriminator is forced.
func (s *ChambreService) CreateSuite(suite *models.Chambre) error {
	if suite.Prix < 0 {
		return utils.BadRequest("le prix ne peut pas être négatif")
	}
	if suite.Numero <= 0 {
		return utils.BadRequest("le numéro de chambre doit être positif")
	}
	if suite.NombrePieces == nil || *suite.NombrePieces <= 0 {
		return utils.BadRequest("le nombre de pièces doit être positif")
	}
	suite.TypeChambre = models.TypeChambreSuite

	if err := s.DB.Create(suite).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			return utils.Conflict("la chambre numéro %d existe déjà", suite.Numero)
		}
		return fmt.Errorf("failed to create suite: %w", err)
	}
	return nil
}

func (s *ChambreService) Update(id uint, updated *models.Chambre) (*models.Chambre, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updated.Prix < 0 {
		return nil, utils.BadRequest("le prix ne peut pas être négatif")
	}
	if updated.Numero <= 0 {
		return nil, utils.BadRequest("le numéro de chambre doit être positif")
	}

	existing.Numero = updated.Numero
	existing.Prix = updated.Prix
	existing.TypeChambre = updated.TypeChambre
	if existing.EstSuite() {
		existing.SuiteNom = updated.SuiteNom
		existing.NombrePieces = updated.NombrePieces
		existing.Jacuzzi = updated.Jacuzzi
	} else {
		// leaving SUITE drops the variant payload
		existing.SuiteNom = nil
		existing.NombrePieces = nil
		existing.Jacuzzi = nil
	}

	if err := s.DB.Model(existing).Updates(map[string]interface{}{
		"numero":        existing.Numero,
		"prix":          existing.Prix,
		"type_chambre":  existing.TypeChambre,
		"suite_nom":     existing.SuiteNom,
		"nombre_pieces": existing.NombrePieces,
		"jacuzzi":       existing.Jacuzzi,
	}).Error; err != nil {
		if utils.IsDuplicateEntry(err) {
			return nil, utils.Conflict("la chambre numéro %d existe déjà", existing.Numero)
		}
		return nil, fmt.Errorf("failed to update chambre %d: %w", id, err)
	}
	return existing, nil
}

// Delete removes the room and, in the same transaction, the reservations
// booked on it. Soft deletes make DB-level cascades inert, so the cascade is
// explicit.
func (s *ChambreService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chambre_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations of chambre %d: %w", id, err)
		}
		if err := tx.Delete(&models.Chambre{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete chambre %d: %w", id, err)
		}
		return nil
	})
}

func (s *ChambreService) FindByType(typeChambre string) ([]models.Chambre, error) {
	var chambres []models.Chambre
	if err := s.DB.Where("type_chambre = ?", typeChambre).Find(&chambres).Error; err != nil {
		return nil, fmt.Errorf("failed to find chambres by type: %w", err)
	}
	return chambres, nil
}

func (s *ChambreService) FindByMaxPrix(maxPrix float64) ([]models.Chambre, error) {
	var chambres []models.Chambre
	if err := s.DB.Where("prix <= ?", maxPrix).Find(&chambres).Error; err != nil {
		return nil, fmt.Errorf("failed to find chambres by max prix: %w", err)
	}
	return chambres, nil
}
