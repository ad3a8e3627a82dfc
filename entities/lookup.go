package entities

type Category struct {
	CategoryID   int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"column:category_name;type:varchar(255);not null" json:"category_name"`
}

func (Category) TableName() string {
	return "category"
}

type Cuisine struct {
	CuisineID   int64  `gorm:"column:cuisine_id;primaryKey;autoIncrement" json:"cuisine_id"`
	CuisineName string `gorm:"column:cuisine_name;type:varchar(255);not null" json:"cuisine_name"`
}

func (Cuisine) TableName() string {
	return "cuisine"
}

type RecipeType struct {
	RecipeTypeID   int64  `gorm:"column:recipe_type_id;primaryKey;autoIncrement" json:"recipe_type_id"`
	RecipeTypeName string `gorm:"column:recipe_type_name;type:varchar(255);not null" json:"recipe_type_name"`
}

func (RecipeType) TableName() string {
	return "recipe_type"
}

// CookingMethod and IngredientType describe how an ingredient is used in a
// specific recipe, not the ingredient itself.
type CookingMethod struct {
	CookingMethodID   int64  `gorm:"column:cooking_method_id;primaryKey;autoIncrement" json:"cooking_method_id"`
	CookingMethodName string `gorm:"column:cooking_method_name;type:varchar(255);not null" json:"cooking_method_name"`
}

func (CookingMethod) TableName() string {
	return "cooking_method"
}

type IngredientType struct {
	IngredientTypeID   int64  `gorm:"column:ingredient_type_id;primaryKey;autoIncrement" json:"ingredient_type_id"`
	IngredientTypeName string `gorm:"column:ingredient_type_name;type:varchar(255);not null" json:"ingredient_type_name"`
}

func (IngredientType) TableName() string {
	return "ingredient_type"
}
