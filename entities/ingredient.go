package entities

// Ingredient is a global catalog entry. Recipe specific attributes live on
// RecipeIngredient.
type Ingredient struct {
	IngredientID   int64  `gorm:"column:ingredient_id;primaryKey;autoIncrement" json:"ingredient_id"`
	IngredientName string `gorm:"column:ingredient_name;type:varchar(255);not null" json:"ingredient_name"`
}

func (Ingredient) TableName() string {
	return "ingredient"
}
