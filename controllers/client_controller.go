package controllers

import (
	"net/http"

	"gestion-hotel/models"
	"gestion-hotel/services"
	"gestion-hotel/utils"

	"github.com/gin-gonic/gin"
)

// ClientDTO is the request shape for creating or updating a client.
type ClientDTO struct {
	Nom       string `json:"nom" binding:"required,min=2,max=50"`
	Prenom    string `json:"prenom" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Telephone string `json:"telephone" binding:"required,min=10,max=20"`
}

// ClientVIPDTO adds the VIP remise; it defaults to 0.15 when omitted.
type ClientVIPDTO struct {
	Nom       string   `json:"nom" binding:"required,min=2,max=50"`
	Prenom    string   `json:"prenom" binding:"required,min=2,max=50"`
	Email     string   `json:"email" binding:"required,email"`
	Telephone string   `json:"telephone" binding:"required,min=10,max=20"`
	Remise    *float64 `json:"remise" binding:"omitempty,gte=0,lte=1"`
}

type ClientController struct {
	ClientSvc *services.ClientService
}

func NewClientController(svc *services.ClientService) *ClientController {
	return &ClientController{ClientSvc: svc}
}

// GET /api/clients
func (ctrl *ClientController) GetClients(c *gin.Context) {
	page, size, sortBy := paginationParams(c, "clientId")
	result, err := ctrl.ClientSvc.GetAll(page, size, sortBy)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/clients/:id
func (ctrl *ClientController) GetClientByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	client, err := ctrl.ClientSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// POST /api/clients
func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var dto ClientDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	client := models.Client{
		Nom:       dto.Nom,
		Prenom:    dto.Prenom,
		Email:     dto.Email,
		Telephone: dto.Telephone,
	}
	if err := ctrl.ClientSvc.Create(&client); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// POST /api/clients/vip
func (ctrl *ClientController) CreateClientVIP(c *gin.Context) {
	var dto ClientVIPDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	client := models.Client{
		Nom:       dto.Nom,
		Prenom:    dto.Prenom,
		Email:     dto.Email,
		Telephone: dto.Telephone,
		Remise:    dto.Remise,
	}
	if err := ctrl.ClientSvc.CreateVIP(&client); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// PUT /api/clients/:id
func (ctrl *ClientController) UpdateClient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var dto ClientDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	client, err := ctrl.ClientSvc.Update(id, &models.Client{
		Nom:       dto.Nom,
		Prenom:    dto.Prenom,
		Email:     dto.Email,
		Telephone: dto.Telephone,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DELETE /api/clients/:id
func (ctrl *ClientController) DeleteClient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := ctrl.ClientSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/clients/search/nom/:nom
func (ctrl *ClientController) SearchClientsByNom(c *gin.Context) {
	clients, err := ctrl.ClientSvc.FindByNom(c.Param("nom"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}
