package models

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Employe struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Nom     string  `gorm:"column:nom;size:100" json:"nom"`
	Poste   string  `gorm:"column:poste;size:100" json:"poste"`
	Salaire float64 `gorm:"column:salaire" json:"salaire"`
}

func (e *Employe) Travailler() string {
	return fmt.Sprintf("%s (id=%d) travaille au poste de %s.", e.Nom, e.ID, e.Poste)
}

// AugmenterSalaire adds montant to the salary; non-positive amounts are
// ignored.
func (e *Employe) AugmenterSalaire(montant float64) {
	if montant <= 0 {
		log.Println("le montant d'augmentation doit être positif")
		return
	}
	e.Salaire += montant
	log.Printf("salaire de %s augmenté de %.2f DH, nouveau salaire: %.2f DH", e.Nom, montant, e.Salaire)
}

// ChangerPoste assigns a new job title; blank values are ignored.
func (e *Employe) ChangerPoste(nouveauPoste string) {
	if strings.TrimSpace(nouveauPoste) == "" {
		log.Println("le nouveau poste ne peut pas être vide")
		return
	}
	ancien := e.Poste
	e.Poste = nouveauPoste
	log.Printf("%s a changé de poste: %s -> %s", e.Nom, ancien, nouveauPoste)
}
