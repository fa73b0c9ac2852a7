package config

import (
	"fmt"
	"log"
	"os"

	"github.com/BozorgmehrZia/quiz-peach-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database selected by DB_DRIVER (sqlite by default,
// postgres when requested) and migrates the schema.
func InitDB() *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logger.Silent},
		),
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey
		// on both drivers; the answer ledger relies on this.
		TranslateError: true,
	}

	var db *gorm.DB
	var err error

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
		)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "quiz.db"
		}
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
	}

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}

// Migrate creates or updates the tables for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Question{},
		&models.RelatedQuestion{},
		&models.AnsweredQuestion{},
	)
}
