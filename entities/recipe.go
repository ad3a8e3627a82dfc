// File: entities/recipe.go
package entities

type Recipe struct {
	RecipeID        int64  `gorm:"column:recipe_id;primaryKey;autoIncrement" json:"recipe_id"`
	RecipeName      string `gorm:"column:recipe_name;type:varchar(255);not null" json:"recipe_name"`
	RecipeSteps     string `gorm:"column:recipe_steps;type:text" json:"recipe_steps"`
	Image           string `gorm:"column:image;type:text" json:"image,omitempty"`
	PreparationTime int    `gorm:"column:preparation_time" json:"preparation_time"`
	TotalCalories   int    `gorm:"column:total_calories" json:"total_calories"`
	Servings        int    `gorm:"column:servings" json:"servings"`
	CategoryID      int64  `gorm:"column:category_id;not null;index" json:"category_id"`
	CuisineID       int64  `gorm:"column:cuisine_id;not null;index" json:"cuisine_id"`
	RecipeTypeID    int64  `gorm:"column:recipe_type_id;not null;index" json:"recipe_type_id"`

	Category   *Category   `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Cuisine    *Cuisine    `gorm:"foreignKey:CuisineID;references:CuisineID;constraint:OnDelete:CASCADE" json:"-"`
	RecipeType *RecipeType `gorm:"foreignKey:RecipeTypeID;references:RecipeTypeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string {
	return "recipe"
}
