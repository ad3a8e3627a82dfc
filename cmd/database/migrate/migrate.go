package migration

import (
	"Food-Recipes-Backend/entities"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table in dependency order: a table only references
// tables that appear before it.
func Models() []interface{} {
	return []interface{}{
		&entities.Category{},
		&entities.Cuisine{},
		&entities.RecipeType{},
		&entities.CookingMethod{},
		&entities.IngredientType{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
	}
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			logger.Error("error migrating table", zap.String("model", fmt.Sprintf("%T", model)), zap.Error(err))
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	logger.Info("database migration complete")
	return nil
}

// Reset drops every table and recreates the schema from scratch. Existing data
// is lost.
func Reset(db *gorm.DB, logger *zap.Logger) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			logger.Error("error dropping table", zap.String("model", fmt.Sprintf("%T", models[i])), zap.Error(err))
			return fmt.Errorf("drop %T: %w", models[i], err)
		}
	}

	return Migrate(db, logger)
}
