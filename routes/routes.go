package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gestion-hotel/controllers"
	"gestion-hotel/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the route tree.
func SetupRouter(
	cc *controllers.ChambreController,
	clc *controllers.ClientController,
	ec *controllers.EmployeController,
	rc *controllers.ReservationController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		chambres := api.Group("/chambres")
		{
			chambres.GET("", cc.GetChambres)
			chambres.GET("/:id", cc.GetChambreByID)
			chambres.POST("", cc.CreateChambre)
			chambres.POST("/suite", cc.CreateSuite)
			chambres.PUT("/:id", cc.UpdateChambre)
			chambres.DELETE("/:id", cc.DeleteChambre)
			chambres.GET("/type/:type", cc.GetChambresByType)
			chambres.GET("/prix-max/:maxPrix", cc.GetChambresByMaxPrix)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", clc.GetClients)
			clients.GET("/:id", clc.GetClientByID)
			clients.POST("", clc.CreateClient)
			clients.POST("/vip", clc.CreateClientVIP)
			clients.PUT("/:id", clc.UpdateClient)
			clients.DELETE("/:id", clc.DeleteClient)
			clients.GET("/search/nom/:nom", clc.SearchClientsByNom)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", ec.GetEmployes)
			employees.GET("/:id", ec.GetEmployeByID)
			employees.POST("", ec.CreateEmploye)
			employees.PUT("/:id", ec.UpdateEmploye)
			employees.DELETE("/:id", ec.DeleteEmploye)
			employees.GET("/search/nom/:nom", ec.SearchEmployesByNom)
			employees.GET("/search/poste/:poste", ec.SearchEmployesByPoste)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			// /dates must not be swallowed by /:id
			reservations.GET("/dates", rc.GetReservationsBetweenDates)
			reservations.GET("/:id", rc.GetReservationByID)
			reservations.POST("", rc.CreateReservation)
			reservations.POST("/online", rc.CreateOnlineReservation)
			reservations.PUT("/:id", rc.UpdateReservation)
			reservations.PUT("/:id/confirmer", rc.ConfirmerReservation)
			reservations.PUT("/:id/annuler", rc.AnnulerReservation)
			reservations.GET("/:id/montant", rc.GetMontant)
			reservations.DELETE("/:id", rc.DeleteReservation)
			reservations.GET("/statut/:statut", rc.GetReservationsByStatut)
			reservations.GET("/client/:clientId", rc.GetReservationsByClient)
			reservations.GET("/chambre/:chambreId", rc.GetReservationsByChambre)
		}
	}

	return r
}
