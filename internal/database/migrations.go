package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/todo-list/internal/models"
	"gorm.io/gorm"
)

// todoIndexes must match the index tags on models.Todo
var todoIndexes = []string{
	"idx_todos_state",
	"idx_todos_category",
}

// EnsureSchema creates the todos table with its constraints when it is
// absent. It is a no-op for an existing table and safe on every start.
func EnsureSchema(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&models.Todo{}) {
		log.Println("Creating todos table...")
		if err := migrator.CreateTable(&models.Todo{}); err != nil {
			return fmt.Errorf("failed to create todos table: %w", err)
		}
	}

	if err := EnsureIndexes(db); err != nil {
		return err
	}
	return nil
}

// EnsureIndexes adds any missing secondary index to the todos table
func EnsureIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, name := range todoIndexes {
		if migrator.HasIndex(&models.Todo{}, name) {
			continue
		}

		if err := migrator.CreateIndex(&models.Todo{}, name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}

		log.Printf("Created index %s on todos", name)
	}

	return nil
}
