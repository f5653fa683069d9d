package controllers

import (
	"net/http"
	"strconv"

	"gestion-hotel/models"
	"gestion-hotel/services"
	"gestion-hotel/utils"

	"github.com/gin-gonic/gin"
)

// ChambreDTO is the request shape for creating or updating a room.
type ChambreDTO struct {
	Numero      int     `json:"numero" binding:"required,gte=1,lte=9999"`
	Prix        float64 `json:"prix" binding:"gte=0,lte=999999.99"`
	TypeChambre string  `json:"typeChambre" binding:"required,oneof=SIMPLE SUITE"`
}

// ChambreSuiteDTO adds the suite payload; nombrePieces defaults to 2.
type ChambreSuiteDTO struct {
	Numero       int     `json:"numero" binding:"required,gte=1,lte=9999"`
	Prix         float64 `json:"prix" binding:"gte=0,lte=999999.99"`
	SuiteNom     string  `json:"suiteNom" binding:"required,min=2,max=100"`
	NombrePieces *int    `json:"nombrePieces" binding:"omitempty,gte=1,lte=20"`
	Jacuzzi      bool    `json:"jacuzzi"`
}

type ChambreController struct {
	ChambreSvc *services.ChambreService
}

func NewChambreController(svc *services.ChambreService) *ChambreController {
	return &ChambreController{ChambreSvc: svc}
}

// GET /api/chambres
func (ctrl *ChambreController) GetChambres(c *gin.Context) {
	page, size, sortBy := paginationParams(c, "chambreId")
	result, err := ctrl.ChambreSvc.GetAll(page, size, sortBy)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/chambres/:id
func (ctrl *ChambreController) GetChambreByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	chambre, err := ctrl.ChambreSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chambre)
}

// POST /api/chambres
func (ctrl *ChambreController) CreateChambre(c *gin.Context) {
	var dto ChambreDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	chambre := models.Chambre{
		Numero:      dto.Numero,
		Prix:        dto.Prix,
		TypeChambre: dto.TypeChambre,
	}
	if err := ctrl.ChambreSvc.Create(&chambre); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chambre)
}

// POST /api/chambres/suite
func (ctrl *ChambreController) CreateSuite(c *gin.Context) {
	var dto ChambreSuiteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	pieces := 2
	if dto.NombrePieces != nil {
		pieces = *dto.NombrePieces
	}
	suite := models.Chambre{
		Numero:       dto.Numero,
		Prix:         dto.Prix,
		SuiteNom:     &dto.SuiteNom,
		NombrePieces: &pieces,
		Jacuzzi:      &dto.Jacuzzi,
	}
	if err := ctrl.ChambreSvc.CreateSuite(&suite); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, suite)
}

// PUT /api/chambres/:id
func (ctrl *ChambreController) UpdateChambre(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var dto ChambreDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	chambre, err := ctrl.ChambreSvc.Update(id, &models.Chambre{
		Numero:      dto.Numero,
		Prix:        dto.Prix,
		TypeChambre: dto.TypeChambre,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chambre)
}

// DELETE /api/chambres/:id
func (ctrl *ChambreController) DeleteChambre(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := ctrl.ChambreSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/chambres/type/:type
func (ctrl *ChambreController) GetChambresByType(c *gin.Context) {
	chambres, err := ctrl.ChambreSvc.FindByType(c.Param("type"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chambres)
}

// GET /api/chambres/prix-max/:maxPrix
func (ctrl *ChambreController) GetChambresByMaxPrix(c *gin.Context) {
	maxPrix, err := strconv.ParseFloat(c.Param("maxPrix"), 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("prix maximum '%s' invalide", c.Param("maxPrix")))
		return
	}
	chambres, err := ctrl.ChambreSvc.FindByMaxPrix(maxPrix)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chambres)
}
