package entities

// RecipeIngredient is one ingredient line of a recipe. Deleting any of the
// referenced rows removes the line.
type RecipeIngredient struct {
	RecipeIngredientID  int64  `gorm:"column:recipe_ingredient_id;primaryKey;autoIncrement" json:"recipe_ingredient_id"`
	Quantity            string `gorm:"column:quantity;type:varchar(255)" json:"quantity"`
	CaloriesPerQuantity int    `gorm:"column:calories_per_quantity" json:"calories_per_quantity"`
	RecipeID            int64  `gorm:"column:recipe_id;not null;index" json:"recipe_id"`
	IngredientID        int64  `gorm:"column:ingredient_id;not null;index" json:"ingredient_id"`
	IngredientTypeID    int64  `gorm:"column:ingredient_type_id;not null" json:"ingredient_type_id"`
	CookingMethodID     int64  `gorm:"column:cooking_method_id;not null" json:"cooking_method_id"`

	Recipe         *Recipe         `gorm:"foreignKey:RecipeID;references:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient     *Ingredient     `gorm:"foreignKey:IngredientID;references:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
	IngredientType *IngredientType `gorm:"foreignKey:IngredientTypeID;references:IngredientTypeID;constraint:OnDelete:CASCADE" json:"-"`
	CookingMethod  *CookingMethod  `gorm:"foreignKey:CookingMethodID;references:CookingMethodID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredient"
}
