package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gestion-hotel/config"
	"gestion-hotel/controllers"
	"gestion-hotel/routes"
	"gestion-hotel/services"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	log.Println("database connection established, migrations applied")

	chambreService := services.NewChambreService(db)
	clientService := services.NewClientService(db)
	employeService := services.NewEmployeService(db)
	reservationService := services.NewReservationService(db)

	chambreController := controllers.NewChambreController(chambreService)
	clientController := controllers.NewClientController(clientService)
	employeController := controllers.NewEmployeController(employeService)
	reservationController := controllers.NewReservationController(reservationService)

	router := routes.SetupRouter(chambreController, clientController, employeController, reservationController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
