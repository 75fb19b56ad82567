package ports

import "go.trai.ch/omegaup/internal/core/domain"

// RecipeLoader defines the interface for loading install recipes.
//
//go:generate go run go.uber.org/mock/mockgen -source=recipe_loader.go -destination=mocks/mock_recipe_loader.go -package=mocks
type RecipeLoader interface {
	// Load reads the recipe at path. An empty path returns the built-in recipe.
	Load(path string) (*domain.Recipe, error)
}
