package main

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"bankslips/internal/handlers"
	"bankslips/internal/repositories"
	"bankslips/internal/services"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	bankslipHandler *handlers.BankslipHandler
	bankslipRepo    *repositories.BankslipRepository
	db              *sql.DB
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger) *application {
	// Repositories
	bankslipRepo := &repositories.BankslipRepository{DB: db}

	// Services
	bankslipService := &services.BankslipService{BankslipRepo: bankslipRepo}

	// Handlers
	bankslipHandler := &handlers.BankslipHandler{Service: bankslipService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		bankslipHandler: bankslipHandler,
		bankslipRepo:    bankslipRepo,
		db:              db,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
