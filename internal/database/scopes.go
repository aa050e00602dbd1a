package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/todo-list/internal/constants"
)

// likeEscaper escapes LIKE wildcards using '!', which needs no quoting in
// SQLite, MySQL or PostgreSQL string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// NameContains matches todos whose name contains search. Matching follows
// the store's LIKE: ASCII case is ignored on SQLite and MySQL, and ILIKE gives
// the same on PostgreSQL. Any other character must match exactly. An empty
// search matches everything.
func NameContains(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		like := "LIKE"
		if db.Dialector.Name() == "postgres" {
			like = "ILIKE"
		}
		pattern := "%" + likeEscaper.Replace(search) + "%"
		return db.Where("name "+like+" ? ESCAPE '!'", pattern)
	}
}

// InCategory matches todos in category. An empty category or the "All"
// sentinel matches everything.
func InCategory(category string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category == "" || category == constants.FilterAll {
			return db
		}
		return db.Where("category = ?", category)
	}
}
