package service

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/namuapp/receitas-api/internal/catalog"
	"github.com/namuapp/receitas-api/internal/model"
)

// ErrRecipeNotFound is returned when an id matches no catalog record.
var ErrRecipeNotFound = errors.New("recipe not found")

// ErrNoRecipesMatched is returned by the aggregation operations when none of
// the requested ids resolve to a catalog record.
var ErrNoRecipesMatched = errors.New("no recipes matched the given ids")

// RecipeService answers queries and aggregations over the catalog. All
// methods are safe for concurrent use because the catalog is immutable.
type RecipeService struct {
	catalog *catalog.Catalog
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(c *catalog.Catalog) *RecipeService {
	return &RecipeService{catalog: c}
}

// List returns the full catalog in dataset order.
func (s *RecipeService) List() []model.Recipe {
	return s.catalog.All()
}

// Count reports the catalog size.
func (s *RecipeService) Count() int {
	return s.catalog.Len()
}

// Get returns the recipe with the given id or ErrRecipeNotFound.
func (s *RecipeService) Get(id int) (*model.Recipe, error) {
	r, ok := s.catalog.ByID(id)
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return r, nil
}

// FilterByTag returns the recipes whose tag equals tag, compared
// case-insensitively, in catalog order. An empty result is not an error.
func (s *RecipeService) FilterByTag(tag string) []model.Recipe {
	out := []model.Recipe{}
	for _, r := range s.catalog.All() {
		if strings.EqualFold(r.Tag, tag) {
			out = append(out, r)
		}
	}
	return out
}

// SearchByName returns the recipes whose name contains term as a
// case-insensitive substring, in catalog order. Rejecting an empty term is
// the HTTP layer's job; an empty term here would match everything.
func (s *RecipeService) SearchByName(term string) []model.Recipe {
	needle := strings.ToLower(term)
	out := []model.Recipe{}
	for _, r := range s.catalog.All() {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Tags returns every distinct tag with its occurrence count, sorted
// lexicographically. Tags are defaulted at load time, so every record
// contributes to exactly one bucket and the counts sum to the catalog size.
func (s *RecipeService) Tags() []model.TagCount {
	counts := map[string]int{}
	for _, r := range s.catalog.All() {
		counts[r.Tag]++
	}

	out := make([]model.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, model.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// Extremes returns the most and least caloric recipes. Ties keep the first
// record in catalog order (strict comparisons in a single forward fold).
// Both results are nil for an empty catalog.
func (s *RecipeService) Extremes() (most, least *model.Recipe) {
	all := s.catalog.All()
	if len(all) == 0 {
		return nil, nil
	}
	most, least = &all[0], &all[0]
	for i := range all[1:] {
		r := &all[i+1]
		if r.TotalCalories > most.TotalCalories {
			most = r
		}
		if r.TotalCalories < least.TotalCalories {
			least = r
		}
	}
	return most, least
}

// Resolve maps ids to catalog records, silently dropping unknown ids. Order
// follows the input id list.
func (s *RecipeService) Resolve(ids []int) []model.Recipe {
	out := []model.Recipe{}
	for _, id := range ids {
		if r, ok := s.catalog.ByID(id); ok {
			out = append(out, *r)
		}
	}
	return out
}

// AggregateIngredients resolves ids and sums their ingredient quantities.
// Unknown ids are dropped; if nothing resolves the operation fails with
// ErrNoRecipesMatched rather than producing an empty aggregate.
func (s *RecipeService) AggregateIngredients(ids []int) ([]model.Recipe, []model.IngredientTotal, error) {
	recipes := s.Resolve(ids)
	if len(recipes) == 0 {
		return nil, nil, ErrNoRecipesMatched
	}
	return recipes, SumIngredients(recipes), nil
}

// AggregateMacros resolves ids and sums their calories and macronutrients,
// with the same unknown-id semantics as AggregateIngredients.
func (s *RecipeService) AggregateMacros(ids []int) ([]model.Recipe, model.MacroSummary, error) {
	recipes := s.Resolve(ids)
	if len(recipes) == 0 {
		return nil, model.MacroSummary{}, ErrNoRecipesMatched
	}
	return recipes, SumMacros(recipes), nil
}

// SumIngredients groups every ingredient of every record by exact name and
// sums the quantities. Results are rounded to 2 decimals and sorted by
// ingredient name.
func SumIngredients(recipes []model.Recipe) []model.IngredientTotal {
	sums := map[string]float64{}
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			sums[ing.Name] += ing.Quantity
		}
	}

	out := make([]model.IngredientTotal, 0, len(sums))
	for name, qty := range sums {
		out = append(out, model.IngredientTotal{Name: name, TotalQuantity: round2(qty)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SumMacros sums total calories and per-type macronutrient values across the
// records. Results are rounded to 2 decimals, macro types sorted.
func SumMacros(recipes []model.Recipe) model.MacroSummary {
	sums := map[string]float64{}
	var calories float64
	for _, r := range recipes {
		calories += r.TotalCalories
		for _, m := range r.Macros {
			sums[m.Type] += m.Value
		}
	}

	macros := make([]model.MacroTotal, 0, len(sums))
	for typ, val := range sums {
		macros = append(macros, model.MacroTotal{Type: typ, TotalValue: round2(val)})
	}
	sort.Slice(macros, func(i, j int) bool { return macros[i].Type < macros[j].Type })

	return model.MacroSummary{
		TotalCalories: round2(calories),
		Macros:        macros,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
