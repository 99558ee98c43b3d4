package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port       string
	DBDSN      string
	CatalogURL string
	LogFile    string
	PageSize   int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "cafestore.db"
	} // sqlite file in project root
	catalogURL := os.Getenv("CATALOG_URL")
	if catalogURL == "" {
		catalogURL = "https://fakestoreapi.com"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./cafestore.log" // default log sink in project root
	}
	pageSize := 10
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	cfg := Config{Port: port, DBDSN: dsn, CatalogURL: catalogURL, LogFile: logFile, PageSize: pageSize}
	log.Printf("[config] PORT=%s DB_DSN=%s CATALOG_URL=%s LOG_FILE=%s PAGE_SIZE=%d",
		cfg.Port, cfg.DBDSN, cfg.CatalogURL, cfg.LogFile, cfg.PageSize)
	return cfg
}
