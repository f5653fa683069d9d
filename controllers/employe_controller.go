package controllers

import (
	"net/http"

	"gestion-hotel/models"
	"gestion-hotel/services"
	"gestion-hotel/utils"

	"github.com/gin-gonic/gin"
)

// EmployeDTO is the request shape for creating or updating an employee.
type EmployeDTO struct {
	Nom     string  `json:"nom" binding:"required,min=2,max=100"`
	Poste   string  `json:"poste" binding:"required,min=2,max=100"`
	Salaire float64 `json:"salaire" binding:"gte=0"`
}

type EmployeController struct {
	EmployeSvc *services.EmployeService
}

func NewEmployeController(svc *services.EmployeService) *EmployeController {
	return &EmployeController{EmployeSvc: svc}
}

// GET /api/employees
func (ctrl *EmployeController) GetEmployes(c *gin.Context) {
	page, size, sortBy := paginationParams(c, "employeId")
	result, err := ctrl.EmployeSvc.GetAll(page, size, sortBy)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/employees/:id
func (ctrl *EmployeController) GetEmployeByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	employe, err := ctrl.EmployeSvc.GetByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employe)
}

// POST /api/employees
func (ctrl *EmployeController) CreateEmploye(c *gin.Context) {
	var dto EmployeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	employe := models.Employe{
		Nom:     dto.Nom,
		Poste:   dto.Poste,
		Salaire: dto.Salaire,
	}
	if err := ctrl.EmployeSvc.Create(&employe); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employe)
}

// PUT /api/employees/:id
func (ctrl *EmployeController) UpdateEmploye(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var dto EmployeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	employe, err := ctrl.EmployeSvc.Update(id, &models.Employe{
		Nom:     dto.Nom,
		Poste:   dto.Poste,
		Salaire: dto.Salaire,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employe)
}

// DELETE /api/employees/:id
func (ctrl *EmployeController) DeleteEmploye(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := ctrl.EmployeSvc.Delete(id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/employees/search/nom/:nom
func (ctrl *EmployeController) SearchEmployesByNom(c *gin.Context) {
	employes, err := ctrl.EmployeSvc.FindByNom(c.Param("nom"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employes)
}

// GET /api/employees/search/poste/:poste
func (ctrl *EmployeController) SearchEmployesByPoste(c *gin.Context) {
	employes, err := ctrl.EmployeSvc.FindByPoste(c.Param("poste"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employes)
}
