package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/inventory"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
)

// RecipeUseCase casos de uso de recetas y su costeo.
type RecipeUseCase struct {
	repo        repository.RecipeRepository
	ingredients repository.IngredientRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository, ingredients repository.IngredientRepository) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, ingredients: ingredients}
}

// Create crea una receta.
func (uc *RecipeUseCase) Create(ctx context.Context, in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	lines, err := uc.toLines(ctx, in.Ingredients)
	if err != nil {
		return nil, err
	}
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	r := &entity.Recipe{
		ID:           uuid.New().String(),
		Code:         workflow.NextRecipeCode(n),
		Name:         in.Name,
		Category:     in.Category,
		ProductID:    in.ProductID,
		Servings:     in.Servings,
		PrepMinutes:  in.PrepMinutes,
		Instructions: in.Instructions,
		Ingredients:  lines,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRecipeResponse(r), nil
}

// GetByID obtiene una receta.
func (uc *RecipeUseCase) GetByID(ctx context.Context, id string) (*dto.RecipeResponse, error) {
	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRecipeResponse(r), nil
}

// Update actualiza una receta.
func (uc *RecipeUseCase) Update(ctx context.Context, id string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Category != nil {
		r.Category = *in.Category
	}
	if in.ProductID != nil {
		r.ProductID = *in.ProductID
	}
	if in.Servings != nil {
		r.Servings = *in.Servings
	}
	if in.PrepMinutes != nil {
		r.PrepMinutes = *in.PrepMinutes
	}
	if in.Instructions != nil {
		r.Instructions = *in.Instructions
	}
	if in.Ingredients != nil {
		lines, err := uc.toLines(ctx, in.Ingredients)
		if err != nil {
			return nil, err
		}
		r.Ingredients = lines
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRecipeResponse(r), nil
}

// List lista recetas, opcionalmente de una categoría.
func (uc *RecipeUseCase) List(ctx context.Context, category string) ([]dto.RecipeResponse, error) {
	list, err := uc.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecipeResponse(r))
	}
	return items, nil
}

// Delete elimina una receta.
func (uc *RecipeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Categories categorías distintas en orden alfabético.
func (uc *RecipeUseCase) Categories(ctx context.Context) ([]string, error) {
	list, err := uc.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range list {
		key := strings.ToLower(r.Category)
		if r.Category == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out, nil
}

// Cost Σ cantidad × costo unitario del ingrediente, total y por porción.
func (uc *RecipeUseCase) Cost(ctx context.Context, id string) (*dto.RecipeCostResponse, error) {
	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	ings, err := uc.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	costs := make(map[string]decimal.Decimal, len(ings))
	for _, ing := range ings {
		costs[ing.ID] = ing.UnitCost
	}
	rc := inventory.CalculateRecipeCost(r, costs)
	out := &dto.RecipeCostResponse{RecipeID: r.ID, TotalCost: rc.Total, PerServing: rc.PerServing}
	for _, l := range rc.Lines {
		out.Lines = append(out.Lines, dto.RecipeCostLineDTO{
			IngredientID: l.IngredientID,
			Name:         l.Name,
			Quantity:     l.Quantity,
			UnitCost:     l.UnitCost,
			Cost:         l.Cost,
			Missing:      l.Missing,
		})
	}
	return out, nil
}

// toLines valida cantidades y completa nombre/unidad desde el ingrediente.
func (uc *RecipeUseCase) toLines(ctx context.Context, in []dto.RecipeIngredientDTO) ([]entity.RecipeIngredient, error) {
	out := make([]entity.RecipeIngredient, 0, len(in))
	for _, l := range in {
		if !l.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: cantidad de %s debe ser mayor que 0", domain.ErrInvalidInput, l.IngredientID)
		}
		ing, err := uc.ingredients.GetByID(ctx, l.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, notFound("ingrediente", l.IngredientID)
		}
		unit := l.Unit
		if unit == "" {
			unit = ing.Unit
		}
		out = append(out, entity.RecipeIngredient{IngredientID: ing.ID, Name: ing.Name, Quantity: l.Quantity, Unit: unit})
	}
	return out, nil
}

func (uc *RecipeUseCase) get(ctx context.Context, id string) (*entity.Recipe, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFound("receta", id)
	}
	return r, nil
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	out := &dto.RecipeResponse{
		ID:           r.ID,
		Code:         r.Code,
		Name:         r.Name,
		Category:     r.Category,
		ProductID:    r.ProductID,
		Servings:     r.Servings,
		PrepMinutes:  r.PrepMinutes,
		Instructions: r.Instructions,
		Ingredients:  make([]dto.RecipeIngredientDTO, 0, len(r.Ingredients)),
	}
	for _, l := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, dto.RecipeIngredientDTO{
			IngredientID: l.IngredientID, Name: l.Name, Quantity: l.Quantity, Unit: l.Unit,
		})
	}
	return out
}
