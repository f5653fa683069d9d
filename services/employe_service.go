package services

import (
	"errors"
	"fmt"
	"strings"

	"gestion-hotel/models"
	"gestion-hotel/utils"

	"gorm.io/gorm"
)

var employeSortColumns = map[string]string{
	"employeId": "id",
	"id":        "id",
	"nom":       "nom",
	"poste":     "poste",
	"salaire":   "salaire",
}

type EmployeService struct {
	DB *gorm.DB
}

func NewEmployeService(db *gorm.DB) *EmployeService {
	return &EmployeService{DB: db}
}

func (s *EmployeService) GetAll(page, size int, sortBy string) (Page[models.Employe], error) {
	return paginate[models.Employe](
		s.DB.Model(&models.Employe{}),
		page, size,
		sortColumn(employeSortColumns, sortBy),
	)
}

func (s *EmployeService) GetByID(id uint) (*models.Employe, error) {
	var employe models.Employe
	if err := s.DB.First(&employe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("employé avec l'ID %d introuvable", id)
		}
		return nil, fmt.Errorf("failed to load employe %d: %w", id, err)
	}
	return &employe, nil
}

func validateEmploye(employe *models.Employe) error {
	if strings.TrimSpace(employe.Nom) == "" {
		return utils.BadRequest("le nom ne peut pas être vide")
	}
	if employe.Salaire < 0 {
		return utils.BadRequest("le salaire ne peut pas être négatif")
	}
	return nil
}

func (s *EmployeService) Create(employe *models.Employe) error {
	if err := validateEmploye(employe); err != nil {
		return err
	}
	if err := s.DB.Create(employe).Error; err != nil {
		return fmt.Errorf("failed to create employe: %w", err)
	}
	return nil
}

func (s *EmployeService) Update(id uint, updated *models.Employe) (*models.Employe, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateEmploye(updated); err != nil {
		return nil, err
	}

	existing.Nom = updated.Nom
	existing.Poste = updated.Poste
	existing.Salaire = updated.Salaire

	if err := s.DB.Model(existing).Updates(map[string]interface{}{
		"nom":     existing.Nom,
		"poste":   existing.Poste,
		"salaire": existing.Salaire,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update employe %d: %w", id, err)
	}
	return existing, nil
}

// Delete removes the employee and the reservations it manages in one
// transaction.
func (s *EmployeService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employe_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations of employe %d: %w", id, err)
		}
		if err := tx.Delete(&models.Employe{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete employe %d: %w", id, err)
		}
		return nil
	})
}

func (s *EmployeService) FindByNom(nom string) ([]models.Employe, error) {
	var employes []models.Employe
	if err := s.DB.Where("nom = ?", nom).Find(&employes).Error; err != nil {
		return nil, fmt.Errorf("failed to find employes by nom: %w", err)
	}
	return employes, nil
}

func (s *EmployeService) FindByPoste(poste string) ([]models.Employe, error) {
	var employes []models.Employe
	if err := s.DB.Where("poste = ?", poste).Find(&employes).Error; err != nil {
		return nil, fmt.Errorf("failed to find employes by poste: %w", err)
	}
	return employes, nil
}
