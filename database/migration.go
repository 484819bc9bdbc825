package database

import (
	"fmt"
	"log"

	"github.com/gorditas/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	migrator := db.Migrator()
	for _, model := range allModelsWithNames() {
		if migrator.HasTable(model.value) {
			log.Printf("  ✓ Table already exists: %s", model.name)
			continue
		}
		if err := migrator.CreateTable(model.value); err != nil {
			return fmt.Errorf("create table %s: %w", model.name, err)
		}
		log.Printf("  ✓ Created table: %s", model.name)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

type namedModel struct {
	name  string
	value interface{}
}

func allModelsWithNames() []namedModel {
	named := make([]namedModel, 0, len(models.AllModels()))
	for _, m := range models.AllModels() {
		name := "?"
		if t, ok := m.(interface{ TableName() string }); ok {
			name = t.TableName()
		}
		named = append(named, namedModel{name: name, value: m})
	}
	return named
}
