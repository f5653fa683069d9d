package models

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatutEnAttente = "EN_ATTENTE"
	StatutConfirmee = "CONFIRMEE"
	StatutAnnulee   = "ANNULEE"

	TypeReservationStandard = "STANDARD"
	TypeReservationOnline   = "ONLINE"

	PlateformeSiteWeb = "SiteWeb"
)

// Reservation holds both the standard reservation and the ONLINE variant,
// discriminated by TypeReservation. Online reservations carry a booking
// platform and their own remise; both columns stay NULL otherwise.
//
// Historique keeps the status transitions as a JSON list, appended on every
// confirm/cancel.
type Reservation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	DateDebut time.Time `gorm:"column:date_debut;type:date" json:"dateDebut"`
	DateFin   time.Time `gorm:"column:date_fin;type:date" json:"dateFin"`
	Statut    string    `gorm:"column:statut;size:20;default:EN_ATTENTE" json:"statut"`

	ClientID  uint  `gorm:"column:client_id;index" json:"clientId"`
	ChambreID uint  `gorm:"column:chambre_id;index" json:"chambreId"`
	EmployeID *uint `gorm:"column:employe_id;index" json:"employeId,omitempty"`

	TypeReservation string   `gorm:"column:type_reservation;size:20;default:STANDARD" json:"typeReservation"`
	Plateforme      *string  `gorm:"column:plateforme;size:100" json:"plateforme,omitempty"`
	Remise          *float64 `gorm:"column:remise" json:"remise,omitempty"`

	Historique datatypes.JSON `gorm:"column:historique" json:"historique,omitempty"`

	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Chambre *Chambre `gorm:"foreignKey:ChambreID" json:"chambre,omitempty"`
	Employe *Employe `gorm:"foreignKey:EmployeID" json:"employe,omitempty"`
}

// HistoriqueEntry is one recorded status transition.
type HistoriqueEntry struct {
	Statut    string    `json:"statut"`
	EmployeID *uint     `json:"employeId,omitempty"`
	Date      time.Time `json:"date"`
}

func (r *Reservation) EstOnline() bool {
	return r.TypeReservation == TypeReservationOnline
}

// Confirmer sets the status to CONFIRMEE. The confirming employee is only
// recorded when one is given; an earlier employee reference is never cleared.
// Re-confirming an already confirmed or cancelled reservation is allowed.
func (r *Reservation) Confirmer(by *Employe) {
	r.Statut = StatutConfirmee
	if by != nil {
		r.Employe = by
		r.EmployeID = &by.ID
		log.Printf("réservation %d confirmée par %s", r.ID, by.Nom)
	} else {
		log.Printf("réservation %d confirmée automatiquement", r.ID)
	}
	if r.EstOnline() && r.Plateforme != nil {
		log.Printf("réservation en ligne confirmée via %s", *r.Plateforme)
	}
	r.appendHistorique()
}

// Annuler sets the status to ANNULEE and always overwrites the employee
// reference, clearing it when no actor is given. Deliberately asymmetric
// with Confirmer.
func (r *Reservation) Annuler(by *Employe) {
	r.Employe = by
	if by != nil {
		r.EmployeID = &by.ID
	} else {
		r.EmployeID = nil
	}
	r.Statut = StatutAnnulee
	nom := "système"
	if by != nil {
		nom = by.Nom
	}
	log.Printf("réservation %d annulée par %s", r.ID, nom)
	r.appendHistorique()
}

// CalculerMontant returns prix × max(days, 1). An online reservation further
// applies its remise. The Chambre association must be loaded; without it the
// amount is 0.
func (r *Reservation) CalculerMontant() float64 {
	if r.Chambre == nil {
		return 0
	}
	jours := int(r.DateFin.Sub(r.DateDebut).Hours() / 24)
	if jours < 1 {
		jours = 1
	}
	total := r.Chambre.Prix * float64(jours)
	if r.EstOnline() && r.Remise != nil {
		total *= 1 - *r.Remise
	}
	return total
}

// Afficher returns the reservation summary. When the Client or Chambre
// association is not loaded it falls back to a short form instead of the full
// display string.
func (r *Reservation) Afficher() string {
	if r.Client == nil || r.Chambre == nil {
		return fmt.Sprintf("Réservation %d [%s] du %s au %s",
			r.ID, r.Statut, r.DateDebut.Format("2006-01-02"), r.DateFin.Format("2006-01-02"))
	}
	if r.EstOnline() {
		plateforme := PlateformeSiteWeb
		if r.Plateforme != nil {
			plateforme = *r.Plateforme
		}
		remise := 0.0
		if r.Remise != nil {
			remise = *r.Remise
		}
		return fmt.Sprintf("Réservation Online %d [%s] via %s : %s %s -> Chambre %d (Remise: %d%%) - %.2f DH",
			r.ID, r.Statut, plateforme, r.Client.Prenom, r.Client.Nom, r.Chambre.Numero,
			int(remise*100), r.CalculerMontant())
	}
	return fmt.Sprintf("Réservation %d [%s] : %s %s -> Chambre %d du %s au %s - %.2f DH",
		r.ID, r.Statut, r.Client.Prenom, r.Client.Nom, r.Chambre.Numero,
		r.DateDebut.Format("2006-01-02"), r.DateFin.Format("2006-01-02"), r.CalculerMontant())
}

// HistoriqueEntries decodes the stored transition list.
func (r *Reservation) HistoriqueEntries() []HistoriqueEntry {
	if len(r.Historique) == 0 {
		return nil
	}
	var entries []HistoriqueEntry
	if err := json.Unmarshal(r.Historique, &entries); err != nil {
		log.Printf("warning: unreadable historique on reservation %d: %v", r.ID, err)
		return nil
	}
	return entries
}

func (r *Reservation) appendHistorique() {
	entries := append(r.HistoriqueEntries(), HistoriqueEntry{
		Statut:    r.Statut,
		EmployeID: r.EmployeID,
		Date:      time.Now().UTC(),
	})
	raw, err := json.Marshal(entries)
	if err != nil {
		log.Printf("warning: failed to encode historique on reservation %d: %v", r.ID, err)
		return
	}
	r.Historique = datatypes.JSON(raw)
}
