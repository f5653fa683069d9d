package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	TypeClientStandard = "STANDARD"
	TypeClientVIP      = "VIP"
)

// Client covers both the standard client and the VIP variant. VIP clients
// carry a Remise fraction in [0,1]; the column stays NULL for standard ones.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Nom        string `gorm:"column:nom;size:50" json:"nom"`
	Prenom     string `gorm:"column:prenom;size:50" json:"prenom"`
	Email      string `gorm:"column:email;size:150" json:"email"`
	Telephone  string `gorm:"column:telephone;size:20" json:"telephone"`
	TypeClient string `gorm:"column:type_client;size:20;default:STANDARD" json:"typeClient"`

	Remise *float64 `gorm:"column:remise" json:"remise,omitempty"`
}

func (cl *Client) EstVIP() bool {
	return cl.TypeClient == TypeClientVIP
}

// Reserver builds a reservation for this client on the given room. A VIP
// client always gets an online reservation carrying its own remise.
func (cl *Client) Reserver(chambre *Chambre, dateDebut, dateFin time.Time) *Reservation {
	reservation := &Reservation{
		DateDebut: dateDebut,
		DateFin:   dateFin,
		Statut:    StatutEnAttente,
		ClientID:  cl.ID,
		Client:    cl,
		ChambreID: chambre.ID,
		Chambre:   chambre,
	}
	if cl.EstVIP() {
		remise := 0.0
		if cl.Remise != nil {
			remise = *cl.Remise
		}
		plateforme := PlateformeSiteWeb
		reservation.TypeReservation = TypeReservationOnline
		reservation.Plateforme = &plateforme
		reservation.Remise = &remise
		return reservation
	}
	reservation.TypeReservation = TypeReservationStandard
	return reservation
}

func (cl *Client) Afficher() string {
	base := fmt.Sprintf("%s %s (id=%d) - %s - %s", cl.Prenom, cl.Nom, cl.ID, cl.Email, cl.Telephone)
	if cl.EstVIP() {
		remise := 0.0
		if cl.Remise != nil {
			remise = *cl.Remise
		}
		return fmt.Sprintf("%s - VIP (%d%%)", base, int(remise*100))
	}
	return base
}
