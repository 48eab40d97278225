package model

// DefaultTag is applied to recipes whose dataset entry carries no tag.
const DefaultTag = "Outros"

// Ingredient is a single ingredient entry of a recipe, as stored in the
// dataset. Quantities are unit-less; the dataset encodes the unit in the
// ingredient name where it matters.
type Ingredient struct {
	Name     string  `json:"NomeIngrediente"`
	Quantity float64 `json:"Quantidade"`
}

// Macro is one macronutrient measurement of a recipe.
type Macro struct {
	Type  string  `json:"Tipo"`
	Value float64 `json:"Valor"`
}

// Recipe is one catalog record. Records are built once at load time and
// never mutated afterwards; Normalize fills the implicit dataset defaults so
// downstream code never has to null-check.
type Recipe struct {
	ID            int          `json:"IdReceita"`
	Name          string       `json:"NomeReceita"`
	Tag           string       `json:"Tag"`
	TotalCalories float64      `json:"CaloriasTotais"`
	Ingredients   []Ingredient `json:"Ingredientes"`
	Macros        []Macro      `json:"Macronutrientes"`
	Restrictions  []string     `json:"Restricoes"`
}

// Normalize applies the dataset's implicit defaults: a missing tag becomes
// DefaultTag and nil sequences become empty ones.
func (r *Recipe) Normalize() {
	if r.Tag == "" {
		r.Tag = DefaultTag
	}
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
	if r.Macros == nil {
		r.Macros = []Macro{}
	}
	if r.Restrictions == nil {
		r.Restrictions = []string{}
	}
}

// IngredientTotal is one row of an ingredient aggregation: the summed
// quantity of a single ingredient name across a recipe subset.
type IngredientTotal struct {
	Name          string  `json:"NomeIngrediente"`
	TotalQuantity float64 `json:"QuantidadeTotal"`
}

// MacroTotal is the summed value of one macronutrient type across a recipe
// subset.
type MacroTotal struct {
	Type       string  `json:"Tipo"`
	TotalValue float64 `json:"ValorTotal"`
}

// MacroSummary is the full macro aggregation result for a recipe subset.
type MacroSummary struct {
	TotalCalories float64      `json:"CaloriasTotais"`
	Macros        []MacroTotal `json:"Macronutrientes"`
}

// TagCount pairs a catalog tag with the number of recipes carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"total"`
}
