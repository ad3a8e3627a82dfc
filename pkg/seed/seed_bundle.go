package seed

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnknownReference   = errors.New("unknown seed reference")
	ErrDuplicateRecipeKey = errors.New("duplicate recipe key")
)

type (
	// Bundle is the whole seed data set. Recipes and recipe ingredient lines
	// point at lookup rows and ingredients by their 1-based position in the
	// corresponding list; lines point at recipes by key.
	Bundle struct {
		Categories        []CategoryEntry         `json:"categories" yaml:"categories" validate:"dive"`
		Cuisines          []CuisineEntry          `json:"cuisines" yaml:"cuisines" validate:"dive"`
		RecipeTypes       []RecipeTypeEntry       `json:"recipe_types" yaml:"recipe_types" validate:"dive"`
		CookingMethods    []CookingMethodEntry    `json:"cooking_methods" yaml:"cooking_methods" validate:"dive"`
		IngredientTypes   []IngredientTypeEntry   `json:"ingredient_types" yaml:"ingredient_types" validate:"dive"`
		Ingredients       []IngredientEntry       `json:"ingredients" yaml:"ingredients" validate:"dive"`
		Recipes           []RecipeEntry           `json:"recipes" yaml:"recipes" validate:"dive"`
		RecipeIngredients []RecipeIngredientEntry `json:"recipe_ingredients" yaml:"recipe_ingredients" validate:"dive"`
	}

	CategoryEntry struct {
		CategoryName string `json:"category_name" yaml:"category_name" validate:"required,max=255"`
	}

	CuisineEntry struct {
		CuisineName string `json:"cuisine_name" yaml:"cuisine_name" validate:"required,max=255"`
	}

	RecipeTypeEntry struct {
		RecipeTypeName string `json:"recipe_type_name" yaml:"recipe_type_name" validate:"required,max=255"`
	}

	CookingMethodEntry struct {
		CookingMethodName string `json:"cooking_method_name" yaml:"cooking_method_name" validate:"required,max=255"`
	}

	IngredientTypeEntry struct {
		IngredientTypeName string `json:"ingredient_type_name" yaml:"ingredient_type_name" validate:"required,max=255"`
	}

	IngredientEntry struct {
		IngredientName string `json:"ingredient_name" yaml:"ingredient_name" validate:"required,max=255"`
	}

	RecipeEntry struct {
		Key             string `json:"key,omitempty" yaml:"key,omitempty"`
		RecipeName      string `json:"recipe_name" yaml:"recipe_name" validate:"required,max=255"`
		RecipeSteps     string `json:"recipe_steps" yaml:"recipe_steps"`
		Image           string `json:"image,omitempty" yaml:"image,omitempty"`
		PreparationTime int    `json:"preparation_time" yaml:"preparation_time" validate:"gte=0"`
		TotalCalories   int    `json:"total_calories" yaml:"total_calories" validate:"gte=0"`
		Servings        int    `json:"servings" yaml:"servings" validate:"gte=0"`
		CategoryID      int    `json:"category_id" yaml:"category_id" validate:"required,gt=0"`
		CuisineID       int    `json:"cuisine_id" yaml:"cuisine_id" validate:"required,gt=0"`
		RecipeTypeID    int    `json:"recipe_type_id" yaml:"recipe_type_id" validate:"required,gt=0"`

		// Ingredients may be listed inline instead of in the top level
		// recipe_ingredients list; RecipeKey is implied.
		Ingredients []RecipeIngredientEntry `json:"ingredients,omitempty" yaml:"ingredients,omitempty" validate:"-"`
	}

	RecipeIngredientEntry struct {
		RecipeKey           string `json:"recipe_key" yaml:"recipe_key" validate:"required"`
		IngredientID        int    `json:"ingredient_id" yaml:"ingredient_id" validate:"required,gt=0"`
		IngredientTypeID    int    `json:"ingredient_type_id" yaml:"ingredient_type_id" validate:"required,gt=0"`
		CookingMethodID     int    `json:"cooking_method_id" yaml:"cooking_method_id" validate:"required,gt=0"`
		Quantity            string `json:"quantity" yaml:"quantity" validate:"max=255"`
		CaloriesPerQuantity int    `json:"calories_per_quantity" yaml:"calories_per_quantity" validate:"gte=0"`
	}
)

// Normalize assigns default recipe keys (the 1-based position) and moves
// inline recipe ingredients into RecipeIngredients.
func (b *Bundle) Normalize() error {
	seen := make(map[string]struct{}, len(b.Recipes))
	for i := range b.Recipes {
		r := &b.Recipes[i]
		if r.Key == "" {
			r.Key = strconv.Itoa(i + 1)
		}
		if _, ok := seen[r.Key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateRecipeKey, r.Key)
		}
		seen[r.Key] = struct{}{}

		for _, line := range r.Ingredients {
			line.RecipeKey = r.Key
			b.RecipeIngredients = append(b.RecipeIngredients, line)
		}
		r.Ingredients = nil
	}
	return nil
}

// IDList maps a 1-based bundle position to the identifier the store assigned.
type IDList []int64

func (l IDList) Resolve(kind string, position int) (int64, error) {
	if position < 1 || position > len(l) {
		return 0, fmt.Errorf("%w: %s #%d (have %d)", ErrUnknownReference, kind, position, len(l))
	}
	return l[position-1], nil
}

type LookupIDs struct {
	Categories      IDList
	Cuisines        IDList
	RecipeTypes     IDList
	CookingMethods  IDList
	IngredientTypes IDList
}

// RecipeIDs maps recipe keys to the identifiers the store assigned.
type RecipeIDs map[string]int64

func (m RecipeIDs) Resolve(key string) (int64, error) {
	id, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: recipe %q", ErrUnknownReference, key)
	}
	return id, nil
}

type Summary struct {
	Categories        int `json:"categories"`
	Cuisines          int `json:"cuisines"`
	RecipeTypes       int `json:"recipe_types"`
	CookingMethods    int `json:"cooking_methods"`
	IngredientTypes   int `json:"ingredient_types"`
	Ingredients       int `json:"ingredients"`
	Recipes           int `json:"recipes"`
	RecipeIngredients int `json:"recipe_ingredients"`
}
