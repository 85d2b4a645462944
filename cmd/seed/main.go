package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"papertrack/internal/config"
	"papertrack/internal/db"
	"papertrack/internal/model"
)

// Sample records for local development. The demo user logs in with
// ada@lovelace.org / engine.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Organism{},
		&model.Author{},
		&model.Paper{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seed(gormDB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Seeding completed")
}

func seed(gormDB *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("engine"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		ID:           "ada@lovelace.org",
		Nick:         "ada",
		Name:         "Ada",
		LastName:     "Lovelace",
		PasswordHash: string(hashed),
	}
	if err := gormDB.FirstOrCreate(&user, model.User{ID: user.ID}).Error; err != nil {
		return err
	}

	organism := model.Organism{
		Name:    "Analytical Society",
		Address: "Trinity Lane",
		Country: "United Kingdom",
	}
	if err := gormDB.Where(model.Organism{Name: organism.Name}).FirstOrCreate(&organism).Error; err != nil {
		return err
	}

	author := model.Author{
		ID:         "ada@lovelace.org",
		Name:       "Ada",
		LastName:   "Lovelace",
		OrganismID: organism.ID,
	}
	if err := gormDB.FirstOrCreate(&author, model.Author{ID: author.ID}).Error; err != nil {
		return err
	}

	paper := model.Paper{
		Title:    "Notes on the Analytical Engine",
		AuthorID: author.ID,
	}
	if err := gormDB.Where(model.Paper{Title: paper.Title}).FirstOrCreate(&paper).Error; err != nil {
		return err
	}

	log.Printf("Seeded user %s, organism %s, author %s, paper %q",
		user.ID, organism.Name, author.ID, paper.Title)
	return nil
}
