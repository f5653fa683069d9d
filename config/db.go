package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gestion-hotel/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "gestion_hotel")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate applies the schema for every entity family.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Employe{},
		&models.Chambre{},
		&models.Reservation{},
	)
}

// SeedDatabase inserts a handful of rooms and employees when the tables are
// empty, so a fresh install answers something.
func SeedDatabase(db *gorm.DB) {
	var chambreCount int64
	db.Model(&models.Chambre{}).Count(&chambreCount)
	if chambreCount == 0 {
		suiteNom := "Suite Royale"
		pieces := 3
		jacuzzi := true
		chambres := []models.Chambre{
			{Numero: 101, Prix: 500, TypeChambre: models.TypeChambreSimple},
			{Numero: 102, Prix: 650, TypeChambre: models.TypeChambreSimple},
			{Numero: 201, Prix: 1800, TypeChambre: models.TypeChambreSuite,
				SuiteNom: &suiteNom, NombrePieces: &pieces, Jacuzzi: &jacuzzi},
		}
		if err := db.Create(&chambres).Error; err != nil {
			log.Printf("warning: failed to seed chambres: %v", err)
		} else {
			log.Println("chambres seeded")
		}
	}

	var employeCount int64
	db.Model(&models.Employe{}).Count(&employeCount)
	if employeCount == 0 {
		employes := []models.Employe{
			{Nom: "Benali", Poste: "Réceptionniste", Salaire: 6000},
			{Nom: "El Amrani", Poste: "Manager", Salaire: 12000},
		}
		if err := db.Create(&employes).Error; err != nil {
			log.Printf("warning: failed to seed employes: %v", err)
		} else {
			log.Println("employes seeded")
		}
	}
}

// ConnectDatabase opens the MySQL connection, runs the migrations and seeds
// the base data. The handle is stored in config.DB.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	SeedDatabase(db)
	return nil
}
