package seed_test

import (
	"Food-Recipes-Backend/pkg/seed"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonBundle = `{
  "categories": [{"category_name": "Dinner"}],
  "cuisines": [{"cuisine_name": "Italian"}],
  "recipe_types": [{"recipe_type_name": "Vegetarian"}],
  "cooking_methods": [{"cooking_method_name": "Raw"}],
  "ingredient_types": [{"ingredient_type_name": "Vegetable"}],
  "ingredients": [{"ingredient_name": "Tomato"}],
  "recipes": [{
    "recipe_name": "Salad",
    "recipe_steps": "Chop.",
    "total_calories": 120,
    "servings": 1,
    "category_id": 1,
    "cuisine_id": 1,
    "recipe_type_id": 1,
    "ingredients": [
      {"ingredient_id": 1, "ingredient_type_id": 1, "cooking_method_id": 1, "quantity": "2 pieces", "calories_per_quantity": 40}
    ]
  }]
}`

const yamlBundle = `
categories:
  - category_name: Dinner
cuisines:
  - cuisine_name: Italian
recipe_types:
  - recipe_type_name: Vegetarian
cooking_methods:
  - cooking_method_name: Raw
ingredient_types:
  - ingredient_type_name: Vegetable
ingredients:
  - ingredient_name: Tomato
recipes:
  - key: salad
    recipe_name: Salad
    recipe_steps: Chop.
    total_calories: 120
    servings: 1
    category_id: 1
    cuisine_id: 1
    recipe_type_id: 1
recipe_ingredients:
  - recipe_key: salad
    ingredient_id: 1
    ingredient_type_id: 1
    cooking_method_id: 1
    quantity: 2 pieces
    calories_per_quantity: 40
`

type fakeS3 struct {
	objects map[string][]byte
	bucket  string
	key     string
}

func (f *fakeS3) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	f.bucket, f.key = bucket, key
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return data, nil
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		location string
		want     seed.Format
		wantErr  bool
	}{
		{location: "seedData.json", want: seed.FormatJSON},
		{location: "data/SEED.JSON", want: seed.FormatJSON},
		{location: "seed.yaml", want: seed.FormatYAML},
		{location: "s3://bucket/catalog/seed.yml", want: seed.FormatYAML},
		{location: "seed.csv", wantErr: true},
		{location: "seed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got, err := seed.FormatFromPath(tt.location)
			if tt.wantErr {
				assert.ErrorIs(t, err, seed.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBundle(t *testing.T) {
	t.Run("json with inline ingredients", func(t *testing.T) {
		bundle, err := seed.ParseBundle([]byte(jsonBundle), seed.FormatJSON)
		require.NoError(t, err)
		require.Len(t, bundle.Recipes, 1)
		assert.Equal(t, "Salad", bundle.Recipes[0].RecipeName)
		assert.Equal(t, 120, bundle.Recipes[0].TotalCalories)
		require.Len(t, bundle.Recipes[0].Ingredients, 1)

		require.NoError(t, bundle.Normalize())
		assert.Equal(t, "1", bundle.Recipes[0].Key)
		assert.Empty(t, bundle.Recipes[0].Ingredients)
		require.Len(t, bundle.RecipeIngredients, 1)
		assert.Equal(t, "1", bundle.RecipeIngredients[0].RecipeKey)
		assert.Equal(t, "2 pieces", bundle.RecipeIngredients[0].Quantity)
	})

	t.Run("yaml", func(t *testing.T) {
		bundle, err := seed.ParseBundle([]byte(yamlBundle), seed.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "Dinner", bundle.Categories[0].CategoryName)
		assert.Equal(t, "salad", bundle.Recipes[0].Key)
		require.Len(t, bundle.RecipeIngredients, 1)
		assert.Equal(t, 40, bundle.RecipeIngredients[0].CaloriesPerQuantity)
	})

	t.Run("both formats describe the same bundle", func(t *testing.T) {
		fromJSON, err := seed.ParseBundle([]byte(jsonBundle), seed.FormatJSON)
		require.NoError(t, err)
		fromYAML, err := seed.ParseBundle([]byte(yamlBundle), seed.FormatYAML)
		require.NoError(t, err)

		require.NoError(t, fromJSON.Normalize())
		require.NoError(t, fromYAML.Normalize())
		fromJSON.Recipes[0].Key = "salad"
		fromJSON.RecipeIngredients[0].RecipeKey = "salad"
		fromJSON.Recipes[0].Ingredients = nil

		assert.Equal(t, fromYAML, fromJSON)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := seed.ParseBundle([]byte(`{"recipes": [`), seed.FormatJSON)
		assert.Error(t, err)

		_, err = seed.ParseBundle([]byte("recipes: [\n"), seed.FormatYAML)
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := seed.ParseBundle([]byte(jsonBundle), seed.Format("toml"))
		assert.ErrorIs(t, err, seed.ErrUnsupportedFormat)
	})
}

func TestReadBundle(t *testing.T) {
	ctx := context.Background()

	t.Run("local file", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(location, []byte(yamlBundle), 0o600))

		bundle, err := seed.ReadBundle(ctx, location, nil)
		require.NoError(t, err)
		assert.Len(t, bundle.Ingredients, 1)
	})

	t.Run("missing local file", func(t *testing.T) {
		_, err := seed.ReadBundle(ctx, filepath.Join(t.TempDir(), "absent.json"), nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("s3 object", func(t *testing.T) {
		s3 := &fakeS3{objects: map[string][]byte{"catalog/seeds/v1.json": []byte(jsonBundle)}}

		bundle, err := seed.ReadBundle(ctx, "s3://catalog/seeds/v1.json", s3)
		require.NoError(t, err)
		assert.Equal(t, "catalog", s3.bucket)
		assert.Equal(t, "seeds/v1.json", s3.key)
		assert.Equal(t, "Salad", bundle.Recipes[0].RecipeName)
	})

	t.Run("s3 without client", func(t *testing.T) {
		_, err := seed.ReadBundle(ctx, "s3://catalog/seed.json", nil)
		assert.Error(t, err)
	})

	t.Run("s3 error", func(t *testing.T) {
		_, err := seed.ReadBundle(ctx, "s3://catalog/missing.json", &fakeS3{})
		assert.ErrorContains(t, err, "NoSuchKey")
	})
}
