package recipe

import (
	"Food-Recipes-Backend/domain"
	"strings"
)

type Operator string

const (
	OpEqual       Operator = "="
	OpLessOrEqual Operator = "<="
	OpIn          Operator = "IN"
)

type (
	// Predicate is one condition of a WHERE clause. Value is either a single
	// bind value, a []int64 for OpIn, or a Subquery.
	Predicate struct {
		Column   string
		Operator Operator
		Value    interface{}
	}

	// Subquery is a nested SELECT used as the right hand side of a predicate.
	Subquery struct {
		SQL  string
		Args []interface{}
	}

	// Query is executable SQL text with its bind values in placeholder order.
	Query struct {
		SQL  string
		Args []interface{}
	}
)

const (
	recipeSelect = `SELECT r.recipe_id, r.recipe_name, r.recipe_steps, r.image, r.preparation_time,
	r.total_calories, r.servings,
	r.category_id, c.category_name,
	r.cuisine_id, cu.cuisine_name,
	r.recipe_type_id, rt.recipe_type_name
FROM recipe r
INNER JOIN category c ON c.category_id = r.category_id
INNER JOIN cuisine cu ON cu.cuisine_id = r.cuisine_id
INNER JOIN recipe_type rt ON rt.recipe_type_id = r.recipe_type_id`

	recipeIngredientSelect = `SELECT ri.recipe_ingredient_id, ri.recipe_id,
	ri.ingredient_id, i.ingredient_name,
	ri.quantity, ri.calories_per_quantity,
	ri.ingredient_type_id, it.ingredient_type_name,
	ri.cooking_method_id, cm.cooking_method_name
FROM recipe_ingredient ri
INNER JOIN ingredient i ON i.ingredient_id = ri.ingredient_id
INNER JOIN ingredient_type it ON it.ingredient_type_id = ri.ingredient_type_id
INNER JOIN cooking_method cm ON cm.cooking_method_id = ri.cooking_method_id`

	recipeOrder           = "ORDER BY r.recipe_id"
	recipeIngredientOrder = "ORDER BY ri.recipe_ingredient_id"
	randomOrder           = "ORDER BY RANDOM() LIMIT 1"
)

// FilterPredicates turns a filter request into its ordered predicate list.
// Fields that are not set contribute nothing.
func FilterPredicates(req domain.RecipeFilterRequest) []Predicate {
	var predicates []Predicate

	if req.CategoryID != nil {
		predicates = append(predicates, Predicate{Column: "r.category_id", Operator: OpEqual, Value: *req.CategoryID})
	}
	if req.CuisineID != nil {
		predicates = append(predicates, Predicate{Column: "r.cuisine_id", Operator: OpEqual, Value: *req.CuisineID})
	}
	if req.RecipeTypeID != nil {
		predicates = append(predicates, Predicate{Column: "r.recipe_type_id", Operator: OpEqual, Value: *req.RecipeTypeID})
	}
	if req.MaxCalories != nil {
		predicates = append(predicates, Predicate{Column: "r.total_calories", Operator: OpLessOrEqual, Value: *req.MaxCalories})
	}

	ids := distinctIDs(req.IngredientIDs)
	if len(ids) > 0 {
		predicates = append(predicates, Predicate{
			Column:   "r.recipe_id",
			Operator: OpIn,
			Value:    ingredientSubquery(ids, req.MatchAllIngredients),
		})
	}

	return predicates
}

// ingredientSubquery selects recipes that use at least one of ids, or all of
// them when matchAll is set. Recipes may use other ingredients as well.
func ingredientSubquery(ids []int64, matchAll bool) Subquery {
	var sb strings.Builder
	args := make([]interface{}, 0, len(ids)+1)

	sb.WriteString("SELECT ri.recipe_id FROM recipe_ingredient ri WHERE ri.ingredient_id IN ")
	sb.WriteString(placeholderList(len(ids)))
	for _, id := range ids {
		args = append(args, id)
	}

	if matchAll {
		sb.WriteString(" GROUP BY ri.recipe_id HAVING COUNT(DISTINCT ri.ingredient_id) = ?")
		args = append(args, len(ids))
	}

	return Subquery{SQL: sb.String(), Args: args}
}

// BuildQuery appends the predicates to base as a conjunctive WHERE clause.
// Bind values follow predicate order, so placeholder positions never drift.
func BuildQuery(base string, predicates []Predicate, suffix string) Query {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(base)
	for i, p := range predicates {
		if i == 0 {
			sb.WriteString("\nWHERE ")
		} else {
			sb.WriteString("\n  AND ")
		}
		sb.WriteString(p.Column)
		sb.WriteByte(' ')
		sb.WriteString(string(p.Operator))
		sb.WriteByte(' ')

		switch v := p.Value.(type) {
		case Subquery:
			sb.WriteString("(" + v.SQL + ")")
			args = append(args, v.Args...)
		case []int64:
			sb.WriteString(placeholderList(len(v)))
			for _, id := range v {
				args = append(args, id)
			}
		default:
			sb.WriteByte('?')
			args = append(args, v)
		}
	}
	if suffix != "" {
		sb.WriteString("\n" + suffix)
	}

	return Query{SQL: sb.String(), Args: args}
}

func FilterRecipesQuery(req domain.RecipeFilterRequest) Query {
	return BuildQuery(recipeSelect, FilterPredicates(req), recipeOrder)
}

func ListRecipesQuery() Query {
	return BuildQuery(recipeSelect, nil, recipeOrder)
}

func RandomRecipeQuery() Query {
	return BuildQuery(recipeSelect, nil, randomOrder)
}

func RecipeIngredientsQuery(recipeID int64) Query {
	return BuildQuery(recipeIngredientSelect, []Predicate{
		{Column: "ri.recipe_id", Operator: OpEqual, Value: recipeID},
	}, recipeIngredientOrder)
}

func placeholderList(n int) string {
	if n <= 0 {
		return "()"
	}
	return "(" + strings.TrimSuffix(strings.Repeat("?, ", n), ", ") + ")"
}

func distinctIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
