package models

import (
	"fmt"
	"time"

	"gorm.io/plugin/soft_delete"
)

const (
	TypeChambreSimple = "SIMPLE"
	TypeChambreSuite  = "SUITE"
)

// Chambre holds both the base room and the SUITE variant. The variant is
// discriminated by TypeChambre; suite columns stay NULL for simple rooms.
//
// DeletedAt is a flag-style soft delete (0 for live rows) so the composite
// unique index only rejects a numero that is taken by a live room; a deleted
// room's numero can be reused.
type Chambre struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time             `json:"-"`
	UpdatedAt time.Time             `json:"-"`
	DeletedAt soft_delete.DeletedAt `gorm:"softDelete:milli;index:idx_chambres_numero,unique" json:"-"`

	Numero      int     `gorm:"column:numero;index:idx_chambres_numero,unique" json:"numero"`
	Prix        float64 `gorm:"column:prix" json:"prix"`
	TypeChambre string  `gorm:"column:type_chambre;size:20;default:SIMPLE" json:"typeChambre"`

	SuiteNom     *string `gorm:"column:suite_nom;size:100" json:"suiteNom,omitempty"`
	NombrePieces *int    `gorm:"column:nombre_pieces" json:"nombrePieces,omitempty"`
	Jacuzzi      *bool   `gorm:"column:jacuzzi" json:"jacuzzi,omitempty"`
}

func (ch *Chambre) EstSuite() bool {
	return ch.TypeChambre == TypeChambreSuite
}

// Afficher returns the display string, suite rooms get the detailed form.
func (ch *Chambre) Afficher() string {
	if ch.EstSuite() && ch.SuiteNom != nil {
		pieces := 2
		if ch.NombrePieces != nil {
			pieces = *ch.NombrePieces
		}
		jacuzzi := "Non"
		if ch.Jacuzzi != nil && *ch.Jacuzzi {
			jacuzzi = "Oui"
		}
		return fmt.Sprintf("Suite %d (id=%d) - %s - %d pièces - Jacuzzi: %s - %.2f DH",
			ch.Numero, ch.ID, *ch.SuiteNom, pieces, jacuzzi, ch.Prix)
	}
	return fmt.Sprintf("Chambre %d (id=%d) - %s - %.2f DH", ch.Numero, ch.ID, ch.TypeChambre, ch.Prix)
}
