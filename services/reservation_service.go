package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gestion-hotel/models"
	"gestion-hotel/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

var reservationSortColumns = map[string]string{
	"reservationId": "id",
	"id":            "id",
	"dateDebut":     "date_debut",
	"dateFin":       "date_fin",
	"statut":        "statut",
}

// ReservationService carries the reservation lifecycle: creation (standard
// and online), confirmation, cancellation, amount computation and the
// filtered lookups.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) GetAll(page, size int, sortBy string) (Page[models.Reservation], error) {
	return paginate[models.Reservation](
		s.DB.Model(&models.Reservation{}).Preload("Client").Preload("Chambre").Preload("Employe"),
		page, size,
		sortColumn(reservationSortColumns, sortBy),
	)
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.
		Preload("Client").
		Preload("Chambre").
		Preload("Employe").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("réservation avec l'ID %d introuvable", id)
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return &reservation, nil
}

// parseDates parses the yyyy-MM-dd pair and applies the date rules: the end
// date must be strictly after the start date and the start date cannot be in
// the past.
func parseDates(dateDebut, dateFin string) (time.Time, time.Time, error) {
	debut, err := time.Parse(dateLayout, dateDebut)
	if err != nil {
		return time.Time{}, time.Time{}, utils.BadRequest("format de dateDebut invalide (attendu yyyy-MM-dd)")
	}
	fin, err := time.Parse(dateLayout, dateFin)
	if err != nil {
		return time.Time{}, time.Time{}, utils.BadRequest("format de dateFin invalide (attendu yyyy-MM-dd)")
	}
	if err := validateDates(debut, fin); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return debut, fin, nil
}

func validateDates(debut, fin time.Time) error {
	if !fin.After(debut) {
		return utils.BadRequest("la date de fin doit être après la date de début")
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if debut.Before(today) {
		return utils.BadRequest("la date de début ne peut pas être dans le passé")
	}
	return nil
}

func (s *ReservationService) resolveClient(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("client avec l'ID %d introuvable", id)
		}
		return nil, fmt.Errorf("failed to load client %d: %w", id, err)
	}
	return &client, nil
}

func (s *ReservationService) resolveChambre(id uint) (*models.Chambre, error) {
	var chambre models.Chambre
	if err := s.DB.First(&chambre, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("chambre avec l'ID %d introuvable", id)
		}
		return nil, fmt.Errorf("failed to load chambre %d: %w", id, err)
	}
	return &chambre, nil
}

// resolveEmploye resolves an optional employee id. A nil id is fine; a given
// id that does not exist is a 404.
func (s *ReservationService) resolveEmploye(id *uint) (*models.Employe, error) {
	if id == nil {
		return nil, nil
	}
	var employe models.Employe
	if err := s.DB.First(&employe, *id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("employé avec l'ID %d introuvable", *id)
		}
		return nil, fmt.Errorf("failed to load employe %d: %w", *id, err)
	}
	return &employe, nil
}

// CreateReservation validates the dates, resolves every referenced id and
// persists a new standard reservation in EN_ATTENTE.
func (s *ReservationService) CreateReservation(dateDebut, dateFin string, clientID, chambreID uint, employeID *uint) (*models.Reservation, error) {
	debut, fin, err := parseDates(dateDebut, dateFin)
	if err != nil {
		return nil, err
	}

	client, err := s.resolveClient(clientID)
	if err != nil {
		return nil, err
	}
	chambre, err := s.resolveChambre(chambreID)
	if err != nil {
		return nil, err
	}
	employe, err := s.resolveEmploye(employeID)
	if err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		DateDebut:       debut,
		DateFin:         fin,
		Statut:          models.StatutEnAttente,
		TypeReservation: models.TypeReservationStandard,
		ClientID:        client.ID,
		ChambreID:       chambre.ID,
	}
	if employe != nil {
		reservation.EmployeID = &employe.ID
	}

	if err := s.DB.Omit(clause.Associations).Create(reservation).Error; err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	reservation.Client = client
	reservation.Chambre = chambre
	reservation.Employe = employe
	return reservation, nil
}

// CreateOnlineReservation persists the ONLINE variant carrying the booking
// platform and its remise.
func (s *ReservationService) CreateOnlineReservation(dateDebut, dateFin string, clientID, chambreID uint, plateforme string, remise float64) (*models.Reservation, error) {
	debut, fin, err := parseDates(dateDebut, dateFin)
	if err != nil {
		return nil, err
	}
	if remise < 0 || remise > 1 {
		return nil, utils.BadRequest("la remise doit être entre 0 et 1")
	}
	if plateforme == "" {
		plateforme = models.PlateformeSiteWeb
	}

	client, err := s.resolveClient(clientID)
	if err != nil {
		return nil, err
	}
	chambre, err := s.resolveChambre(chambreID)
	if err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		DateDebut:       debut,
		DateFin:         fin,
		Statut:          models.StatutEnAttente,
		TypeReservation: models.TypeReservationOnline,
		ClientID:        client.ID,
		ChambreID:       chambre.ID,
		Plateforme:      &plateforme,
		Remise:          &remise,
	}

	if err := s.DB.Omit(clause.Associations).Create(reservation).Error; err != nil {
		return nil, fmt.Errorf("failed to create online reservation: %w", err)
	}

	reservation.Client = client
	reservation.Chambre = chambre
	return reservation, nil
}

// Confirmer loads the reservation, resolves the optional confirming employee
// and persists the entity transition.
func (s *ReservationService) Confirmer(id uint, employeID *uint) (*models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	employe, err := s.resolveEmploye(employeID)
	if err != nil {
		return nil, err
	}

	reservation.Confirmer(employe)
	if err := s.persistTransition(reservation); err != nil {
		return nil, err
	}
	log.Println(reservation.Afficher())
	return reservation, nil
}

// Annuler loads the reservation, resolves the optional cancelling employee
// and persists the entity transition. Unlike Confirmer, the employee column
// is always overwritten, to NULL when no actor is given.
func (s *ReservationService) Annuler(id uint, employeID *uint) (*models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	employe, err := s.resolveEmploye(employeID)
	if err != nil {
		return nil, err
	}

	reservation.Annuler(employe)
	if err := s.persistTransition(reservation); err != nil {
		return nil, err
	}
	log.Println(reservation.Afficher())
	return reservation, nil
}

func (s *ReservationService) persistTransition(reservation *models.Reservation) error {
	err := s.DB.Model(reservation).Updates(map[string]interface{}{
		"statut":     reservation.Statut,
		"employe_id": reservation.EmployeID,
		"historique": reservation.Historique,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to persist reservation %d transition: %w", reservation.ID, err)
	}
	return nil
}

// CalculerMontant delegates the amount computation to the entity.
func (s *ReservationService) CalculerMontant(id uint) (float64, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return 0, err
	}
	return reservation.CalculerMontant(), nil
}

// Update re-validates the dates (including the not-in-the-past rule, exactly
// as on creation) and rewrites the mutable fields.
func (s *ReservationService) Update(id uint, dateDebut, dateFin, statut string, clientID, chambreID uint, employeID *uint) (*models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	debut, fin, err := parseDates(dateDebut, dateFin)
	if err != nil {
		return nil, err
	}

	client, err := s.resolveClient(clientID)
	if err != nil {
		return nil, err
	}
	chambre, err := s.resolveChambre(chambreID)
	if err != nil {
		return nil, err
	}
	employe, err := s.resolveEmploye(employeID)
	if err != nil {
		return nil, err
	}

	reservation.DateDebut = debut
	reservation.DateFin = fin
	reservation.Statut = statut
	reservation.ClientID = client.ID
	reservation.ChambreID = chambre.ID
	if employe != nil {
		reservation.EmployeID = &employe.ID
	} else {
		reservation.EmployeID = nil
	}

	err = s.DB.Model(reservation).Updates(map[string]interface{}{
		"date_debut": reservation.DateDebut,
		"date_fin":   reservation.DateFin,
		"statut":     reservation.Statut,
		"client_id":  reservation.ClientID,
		"chambre_id": reservation.ChambreID,
		"employe_id": reservation.EmployeID,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation %d: %w", id, err)
	}

	reservation.Client = client
	reservation.Chambre = chambre
	reservation.Employe = employe
	return reservation, nil
}

func (s *ReservationService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Reservation{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", id, err)
	}
	return nil
}

func (s *ReservationService) FindByStatut(statut string) ([]models.Reservation, error) {
	return s.findWhere("statut = ?", statut)
}

func (s *ReservationService) FindByClient(clientID uint) ([]models.Reservation, error) {
	return s.findWhere("client_id = ?", clientID)
}

func (s *ReservationService) FindByChambre(chambreID uint) ([]models.Reservation, error) {
	return s.findWhere("chambre_id = ?", chambreID)
}

// FindBetweenDates returns the reservations whose start date falls in
// [start, end], both ISO yyyy-MM-dd.
func (s *ReservationService) FindBetweenDates(start, end string) ([]models.Reservation, error) {
	debut, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, utils.BadRequest("format de date start invalide (attendu yyyy-MM-dd)")
	}
	fin, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, utils.BadRequest("format de date end invalide (attendu yyyy-MM-dd)")
	}
	return s.findWhere("date_debut BETWEEN ? AND ?", debut, fin)
}

func (s *ReservationService) findWhere(cond string, args ...interface{}) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.
		Preload("Client").
		Preload("Chambre").
		Preload("Employe").
		Where(cond, args...).
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	return reservations, nil
}
