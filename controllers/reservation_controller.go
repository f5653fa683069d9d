package controllers

import (
	"net/http"

	"gestion-hotel/services"
	"gestion-hotel/utils"

	"github.com/gin-gonic/gin"
)

// ReservationDTO is the request shape for creating a standard reservation.
// Dates travel as yyyy-MM-dd strings and are parsed by the service.
type ReservationDTO struct {
	DateDebut string `json:"dateDebut" binding:"required"`
	DateFin   string `json:"dateFin" binding:"required"`
	ClientID  uint   `json:"clientId" binding:"required,gte=1"`
	ChambreID uint   `json:"chambreId" binding:"required,gte=1"`
	EmployeID *uint  `json:"employeId" binding:"omitempty,gte=1"`
}

// ReservationOnlineDTO carries the online variant payload; plateforme
// defaults to SiteWeb.
type ReservationOnlineDTO struct {
	DateDebut  string  `json:"dateDebut" binding:"required"`
	DateFin    string  `json:"dateFin" binding:"required"`
	ClientID   uint    `json:"clientId" binding:"required,gte=1"`
	ChambreID  uint    `json:"chambreId" binding:"required,gte=1"`
	Plateforme string  `json:"plateforme"`
	Remise     float64 `json:"remise" binding:"gte=0,lte=1"`
}

// ReservationUpdateDTO rewrites an existing reservation.
type ReservationUpdateDTO struct {
	DateDebut string `json:"dateDebut" binding:"required"`
	DateFin   string `json:"dateFin" binding:"required"`
	Statut    string `json:"statut" binding:"required,oneof=EN_ATTENTE CONFIRMEE ANNULEE"`
	ClientID  uint   `json:"clientId" binding:"required,gte=1"`
	ChambreID uint   `json:"chambreId" binding:"required,gte=1"`
	EmployeID *uint  `json:"employeId" binding:"omitempty,gte=1"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// GET /api/reservations
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	page, size, sortBy := paginationParams(c, "reservationId")
	result, err := ctrl.ReservationSvc.GetAll(page, size, sortBy)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/reservations/:id
func (ctrl *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	reservation, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// POST /api/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var dto ReservationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.CreateReservation(
		dto.DateDebut, dto.DateFin, dto.ClientID, dto.ChambreID, dto.EmployeID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// POST /api/reservations/online
func (ctrl *ReservationController) CreateOnlineReservation(c *gin.Context) {
	var dto ReservationOnlineDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.CreateOnlineReservation(
		dto.DateDebut, dto.DateFin, dto.ClientID, dto.ChambreID, dto.Plateforme, dto.Remise)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// PUT /api/reservations/:id/confirmer?employeId=
func (ctrl *ReservationController) ConfirmerReservation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	employeID, err := optionalEmployeID(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.Confirmer(id, employeID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// PUT /api/reservations/:id/annuler?employeId=
func (ctrl *ReservationController) AnnulerReservation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	employeID, err := optionalEmployeID(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.Annuler(id, employeID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// GET /api/reservations/:id/montant
func (ctrl *ReservationController) GetMontant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	montant, err := ctrl.ReservationSvc.CalculerMontant(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"montant": montant})
}

// PUT /api/reservations/:id
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var dto ReservationUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.Update(
		id, dto.DateDebut, dto.DateFin, dto.Statut, dto.ClientID, dto.ChambreID, dto.EmployeID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DELETE /api/reservations/:id
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := ctrl.ReservationSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/reservations/statut/:statut
func (ctrl *ReservationController) GetReservationsByStatut(c *gin.Context) {
	reservations, err := ctrl.ReservationSvc.FindByStatut(c.Param("statut"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GET /api/reservations/client/:clientId
func (ctrl *ReservationController) GetReservationsByClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	reservations, err := ctrl.ReservationSvc.FindByClient(clientID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GET /api/reservations/chambre/:chambreId
func (ctrl *ReservationController) GetReservationsByChambre(c *gin.Context) {
	chambreID, err := parseIDParam(c, "chambreId")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	reservations, err := ctrl.ReservationSvc.FindByChambre(chambreID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GET /api/reservations/dates?start=&end= (ISO yyyy-MM-dd)
func (ctrl *ReservationController) GetReservationsBetweenDates(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.RespondError(c, utils.BadRequest("les paramètres start et end sont obligatoires"))
		return
	}
	reservations, err := ctrl.ReservationSvc.FindBetweenDates(start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}
