package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/namuapp/receitas-api/internal/model"
	"github.com/namuapp/receitas-api/internal/service"
)

const errRecipeNotFound = "Receita não encontrada"

// RecipeHandler serves the catalog endpoints: listing, lookup, filtering,
// search, tag enumeration, aggregation and stats.
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.GET("/tags", h.ListTags)
	router.GET("/stats", h.Stats)

	recipes := router.Group("/receitas")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/buscar", h.SearchRecipes)
		recipes.GET("/tag/:tag", h.FilterByTag)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/ingredientes", h.GetIngredients)
		recipes.GET("/:id/macros", h.GetMacros)
		recipes.GET("/:id/restricoes", h.GetRestrictions)
		recipes.POST("/ingredientes", h.AggregateIngredients)
		recipes.POST("/macros", h.AggregateMacros)
	}
}

// Home returns service metadata and the endpoint list.
func (h *RecipeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mensagem":       "API de Receitas Namu",
		"total_receitas": h.recipes.Count(),
		"endpoints": gin.H{
			"GET /receitas":                     "Lista todas as receitas",
			"GET /receitas/<id>":                "Busca receita por ID",
			"GET /receitas/tag/<tag>":           "Filtra receitas por tag",
			"GET /receitas/buscar?nome=<termo>": "Busca receitas por nome",
			"GET /tags":                         "Lista todas as tags disponíveis",
			"POST /receitas/ingredientes":       "Ingredientes de várias receitas (soma iguais)",
			"POST /receitas/macros":             "Soma calorias e macros de várias receitas",
			"GET /receitas/<id>/ingredientes":   "Ingredientes de uma receita",
			"GET /receitas/<id>/macros":         "Macros de uma receita",
			"GET /receitas/<id>/restricoes":     "Restrições de uma receita",
			"GET /stats":                        "Estatísticas gerais",
			"POST /contexto/enviar":             "Envia contexto (uso único)",
			"GET /contexto/pegar":               "Recupera contexto e remove",
		},
	})
}

// ListRecipes returns the full catalog.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	all := h.recipes.List()
	c.JSON(http.StatusOK, gin.H{
		"total":    len(all),
		"receitas": all,
	})
}

// GetRecipe returns a single recipe by id. A non-numeric id never matches a
// record, so it is reported the same way as an unknown one.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ok := h.recipeByParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// FilterByTag returns the recipes carrying the given tag. An empty result is
// a normal response, not an error.
func (h *RecipeHandler) FilterByTag(c *gin.Context) {
	tag := c.Param("tag")
	matched := h.recipes.FilterByTag(tag)
	c.JSON(http.StatusOK, gin.H{
		"tag":      tag,
		"total":    len(matched),
		"receitas": matched,
	})
}

// SearchRecipes performs a case-insensitive substring search on recipe
// names. An empty term is a caller error, never a full-catalog match.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	term := c.Query("nome")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": `Parâmetro "nome" é obrigatório`})
		return
	}

	matched := h.recipes.SearchByName(term)
	c.JSON(http.StatusOK, gin.H{
		"termo_busca": term,
		"total":       len(matched),
		"receitas":    matched,
	})
}

// ListTags returns every distinct tag with its occurrence count.
func (h *RecipeHandler) ListTags(c *gin.Context) {
	counts := h.recipes.Tags()

	tags := make([]string, 0, len(counts))
	byTag := gin.H{}
	for _, tc := range counts {
		tags = append(tags, tc.Tag)
		byTag[tc.Tag] = tc.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":             tags,
		"contagem_por_tag": byTag,
	})
}

// GetIngredients returns the ingredient list of one recipe.
func (h *RecipeHandler) GetIngredients(c *gin.Context) {
	recipe, ok := h.recipeByParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"IdReceita":    recipe.ID,
		"NomeReceita":  recipe.Name,
		"Ingredientes": recipe.Ingredients,
	})
}

// GetMacros returns the calories and macronutrients of one recipe.
func (h *RecipeHandler) GetMacros(c *gin.Context) {
	recipe, ok := h.recipeByParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"IdReceita":       recipe.ID,
		"NomeReceita":     recipe.Name,
		"CaloriasTotais":  recipe.TotalCalories,
		"Macronutrientes": recipe.Macros,
	})
}

// GetRestrictions returns the dietary restrictions of one recipe.
func (h *RecipeHandler) GetRestrictions(c *gin.Context) {
	recipe, ok := h.recipeByParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"IdReceita":   recipe.ID,
		"NomeReceita": recipe.Name,
		"Restricoes":  recipe.Restrictions,
	})
}

// AggregateIngredients sums ingredient quantities across the recipes named
// in the request body. Unknown ids are dropped; an id list that resolves to
// nothing is a 404.
func (h *RecipeHandler) AggregateIngredients(c *gin.Context) {
	ids, ok := bindAggregateRequest(c)
	if !ok {
		return
	}

	recipes, totals, err := h.recipes.AggregateIngredients(ids)
	if err != nil {
		if errors.Is(err, service.ErrNoRecipesMatched) {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Nenhuma receita encontrada com os IDs fornecidos"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao somar ingredientes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receitas_ids":         ids,
		"receitas_nomes":       recipeNames(recipes),
		"total_receitas":       len(recipes),
		"ingredientes_somados": totals,
	})
}

// AggregateMacros sums calories and macronutrients across the recipes named
// in the request body, with the same id semantics as AggregateIngredients.
func (h *RecipeHandler) AggregateMacros(c *gin.Context) {
	ids, ok := bindAggregateRequest(c)
	if !ok {
		return
	}

	recipes, summary, err := h.recipes.AggregateMacros(ids)
	if err != nil {
		if errors.Is(err, service.ErrNoRecipesMatched) {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Nenhuma receita encontrada com os IDs fornecidos"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Falha ao somar macros"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receitas_ids":   ids,
		"receitas_nomes": recipeNames(recipes),
		"total_receitas": len(recipes),
		"resultados":     summary,
	})
}

// Stats reports catalog-wide counters and the calorie extremes.
func (h *RecipeHandler) Stats(c *gin.Context) {
	tags := h.recipes.Tags()
	tagNames := make([]string, 0, len(tags))
	for _, tc := range tags {
		tagNames = append(tagNames, tc.Tag)
	}

	var ingredientRows int
	for _, r := range h.recipes.List() {
		ingredientRows += len(r.Ingredients)
	}

	most, least := h.recipes.Extremes()

	c.JSON(http.StatusOK, gin.H{
		"total_receitas":               h.recipes.Count(),
		"total_ingredientes_registros": ingredientRows,
		"total_tags":                   len(tags),
		"tags_disponiveis":             tagNames,
		"receita_mais_calorica":        most,
		"receita_menos_calorica":       least,
	})
}

func (h *RecipeHandler) recipeByParam(c *gin.Context) (*model.Recipe, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"erro": errRecipeNotFound})
		return nil, false
	}

	r, err := h.recipes.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"erro": errRecipeNotFound})
		return nil, false
	}
	return r, true
}

func recipeNames(recipes []model.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return names
}

func bindAggregateRequest(c *gin.Context) ([]int, bool) {
	var req AggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": `Body deve conter "ids": [...]`})
		return nil, false
	}
	return *req.IDs, true
}
