package main

import (
	"log"
	"net/http"

	_ "papertrack/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"papertrack/internal/cache"
	"papertrack/internal/config"
	"papertrack/internal/db"
	"papertrack/internal/handler"
	"papertrack/internal/model"
	"papertrack/internal/repository"
	"papertrack/internal/router"
	"papertrack/internal/service"
)

// @title Papertrack API
// @version 1.0
// @description Registry of users, authors, organisms and papers with Basic-auth gated mutations.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.basic BasicAuth
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Organism{},
		&model.Author{},
		&model.Paper{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	organismRepo := repository.NewOrganismRepository(gormDB)
	authorRepo := repository.NewAuthorRepository(gormDB)
	paperRepo := repository.NewPaperRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	organismService := service.NewOrganismService(organismRepo, cacheClient)
	authorService := service.NewAuthorService(authorRepo, organismRepo)
	paperService := service.NewPaperService(paperRepo, authorRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	organismHandler := handler.NewOrganismHandler(organismService)
	authorHandler := handler.NewAuthorHandler(authorService)
	paperHandler := handler.NewPaperHandler(paperService)

	// Register routes
	router.Register(
		e,
		userService,
		userHandler,
		organismHandler,
		authorHandler,
		paperHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
