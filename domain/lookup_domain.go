package domain

var (
	MessageFailedGetCategories      = "failed to get categories"
	MessageFailedGetCuisines        = "failed to get cuisines"
	MessageFailedGetRecipeTypes     = "failed to get recipe types"
	MessageFailedGetCookingMethods  = "failed to get cooking methods"
	MessageFailedGetIngredientTypes = "failed to get ingredient types"
	MessageFailedGetIngredients     = "failed to get ingredients"
)
