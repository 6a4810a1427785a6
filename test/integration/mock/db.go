// Package mock provides in-memory substitutes for external dependencies.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pantry-bot/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// models lists every table of the schema in migration order.
var models = []any{
	&model.CategoryModel{},
	&model.ProductModel{},
	&model.RecipeModel{},
	&model.IngredientLineModel{},
	&model.SelectionEntryModel{},
	&model.ShoppingItemModel{},
}

// NewDb opens the shared in-memory SQLite connection, migrated once for
// the whole suite.
func NewDb() *gorm.DB {
	if dbConn == nil {
		dbOnce.Do(func() {
			dbConn = open()
		})
	}
	return dbConn
}

func open() *gorm.DB {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory db.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return conn
}

// ClearDb truncates every table between scenarios.
func ClearDb(db *gorm.DB) error {
	// Children first so foreign keys never dangle mid-clear.
	order := []any{
		&model.ShoppingItemModel{},
		&model.SelectionEntryModel{},
		&model.IngredientLineModel{},
		&model.RecipeModel{},
		&model.ProductModel{},
		&model.CategoryModel{},
	}
	for _, m := range order {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
