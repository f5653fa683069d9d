package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gestion-hotel/models"
	"gestion-hotel/utils"

	"gorm.io/gorm"
)

var clientSortColumns = map[string]string{
	"clientId": "id",
	"id":       "id",
	"nom":      "nom",
	"prenom":   "prenom",
	"email":    "email",
}

// telephonePattern matches 10 to 20 digits, spaces, parentheses, + and -.
var telephonePattern = regexp.MustCompile(`^[0-9+\-\s()]{10,20}$`)

type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

func (s *ClientService) GetAll(page, size int, sortBy string) (Page[models.Client], error) {
	return paginate[models.Client](
		s.DB.Model(&models.Client{}),
		page, size,
		sortColumn(clientSortColumns, sortBy),
	)
}

func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("client avec l'ID %d introuvable", id)
		}
		return nil, fmt.Errorf("failed to load client %d: %w", id, err)
	}
	return &client, nil
}

func (s *ClientService) validate(client *models.Client) error {
	if strings.TrimSpace(client.Nom) == "" {
		return utils.BadRequest("le nom ne peut pas être vide")
	}
	if strings.TrimSpace(client.Email) == "" {
		return utils.BadRequest("l'email ne peut pas être vide")
	}
	if client.Telephone != "" && !telephonePattern.MatchString(client.Telephone) {
		return utils.BadRequest("format de téléphone invalide")
	}
	return nil
}

func (s *ClientService) Create(client *models.Client) error {
	if err := s.validate(client); err != nil {
		return err
	}
	client.TypeClient = models.TypeClientStandard
	client.Remise = nil

	if err := s.DB.Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// CreateVIP persists the VIP variant with its remise.
func (s *ClientService) CreateVIP(client *models.Client) error {
	if err := s.validate(client); err != nil {
		return err
	}
	if client.Remise == nil {
		remise := 0.15
		client.Remise = &remise
	}
	if *client.Remise < 0 || *client.Remise > 1 {
		return utils.BadRequest("la remise doit être entre 0 et 1")
	}
	client.TypeClient = models.TypeClientVIP

	if err := s.DB.Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client VIP: %w", err)
	}
	return nil
}

func (s *ClientService) Update(id uint, updated *models.Client) (*models.Client, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(updated); err != nil {
		return nil, err
	}

	existing.Nom = updated.Nom
	existing.Prenom = updated.Prenom
	existing.Email = updated.Email
	existing.Telephone = updated.Telephone

	if err := s.DB.Model(existing).Updates(map[string]interface{}{
		"nom":       existing.Nom,
		"prenom":    existing.Prenom,
		"email":     existing.Email,
		"telephone": existing.Telephone,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update client %d: %w", id, err)
	}
	return existing, nil
}

// Delete removes the client and its reservations in one transaction.
func (s *ClientService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations of client %d: %w", id, err)
		}
		if err := tx.Delete(&models.Client{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete client %d: %w", id, err)
		}
		return nil
	})
}

func (s *ClientService) FindByNom(nom string) ([]models.Client, error) {
	var clients []models.Client
	if err := s.DB.Where("nom = ?", nom).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to find clients by nom: %w", err)
	}
	return clients, nil
}
