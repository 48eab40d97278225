package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/namuapp/receitas-api/internal/catalog"
	"github.com/namuapp/receitas-api/internal/model"
	"github.com/namuapp/receitas-api/internal/observability"
	"github.com/namuapp/receitas-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fixtureRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID: 1, Name: "Bolo de Fubá", Tag: "Doce", TotalCalories: 400,
			Ingredients: []model.Ingredient{
				{Name: "Leite", Quantity: 100},
				{Name: "Fubá", Quantity: 80},
			},
			Macros: []model.Macro{{Type: "Carboidrato", Value: 60}},
		},
		{
			ID: 2, Name: "Pudim de Leite", Tag: "Doce", TotalCalories: 350,
			Ingredients: []model.Ingredient{
				{Name: "Leite", Quantity: 50},
				{Name: "Açúcar", Quantity: 40},
			},
			Macros: []model.Macro{
				{Type: "Carboidrato", Value: 45},
				{Type: "Proteina", Value: 9},
			},
			Restrictions: []string{"Sem Gluten"},
		},
		{
			ID: 3, Name: "Caldo de Frango", Tag: "Salgado", TotalCalories: 150,
			Ingredients: []model.Ingredient{{Name: "Frango", Quantity: 120}},
			Macros:      []model.Macro{{Type: "Proteina", Value: 25}},
		},
	}
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	recipes := service.NewRecipeService(catalog.New(fixtureRecipes()))

	router := gin.New()
	NewRecipeHandler(recipes).RegisterRoutes(router)
	NewContextHandler(service.NewContextService(), metrics).RegisterRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performRawRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return body
}
