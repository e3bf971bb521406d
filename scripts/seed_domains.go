package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"smart-erd-backend/internal/config"
	"smart-erd-backend/internal/database"
	"smart-erd-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DomainData matches one entry in the seed YAML file
type DomainData struct {
	LogicalName  string `yaml:"logical_name"`
	PhysicalType string `yaml:"physical_type"`
}

type DomainsFile struct {
	Domains []DomainData `yaml:"domains"`
}

func main() {
	log.Println("🚀 Seeding default dictionary domains...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	domains, err := loadDomains("scripts/data/domains.yaml")
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	if err := seedDomains(db, domains); err != nil {
		log.Fatalf("Failed to seed domains: %v", err)
	}

	log.Println("✅ Default domains seeded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDomains(path string) ([]DomainData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file DomainsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Domains, nil
}

// seedDomains gives every team the default domain set. Existing entries are
// matched by logical name so reruns are safe.
func seedDomains(db *gorm.DB, domains []DomainData) error {
	var teams []models.Team
	if err := db.Find(&teams).Error; err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}

	created := 0
	for _, team := range teams {
		for _, domainData := range domains {
			var count int64
			err := db.Model(&models.Domain{}).
				Where("team_id = ? AND logical_name = ?", team.ID, domainData.LogicalName).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			domain := &models.Domain{
				TeamID:       team.ID,
				LogicalName:  domainData.LogicalName,
				PhysicalType: domainData.PhysicalType,
			}
			if err := db.Create(domain).Error; err != nil {
				log.Printf("⚠️  Warning: failed to create domain %s for team %s: %v", domainData.LogicalName, team.Name, err)
				continue
			}
			created++
		}
	}

	log.Printf("📋 Domains: %d created across %d teams", created, len(teams))
	return nil
}
