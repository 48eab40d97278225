package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namuapp/receitas-api/internal/model"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "receitas.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileYieldsEmptyCatalog(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
}

func TestLoadMalformedFileYieldsEmptyCatalog(t *testing.T) {
	path := writeDataset(t, `{"this is": "not a recipe list"`)
	c := Load(path)
	assert.Equal(t, 0, c.Len())
}

func TestLoadDataset(t *testing.T) {
	path := writeDataset(t, `[
		{"IdReceita": 10, "NomeReceita": "Caldo Verde", "Tag": "Sopa", "CaloriasTotais": 210,
		 "Ingredientes": [{"NomeIngrediente": "Couve", "Quantidade": 50}],
		 "Macronutrientes": [{"Tipo": "Carboidrato", "Valor": 18}],
		 "Restricoes": ["Vegano"]},
		{"IdReceita": 11, "NomeReceita": "Pão de Queijo"}
	]`)

	c := Load(path)
	require.Equal(t, 2, c.Len())

	// Load order is preserved.
	all := c.All()
	assert.Equal(t, 10, all[0].ID)
	assert.Equal(t, 11, all[1].ID)

	r, ok := c.ByID(10)
	require.True(t, ok)
	assert.Equal(t, "Caldo Verde", r.Name)
	assert.Equal(t, 210.0, r.TotalCalories)
	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, "Couve", r.Ingredients[0].Name)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeDataset(t, `[{"IdReceita": 11, "NomeReceita": "Pão de Queijo"}]`)

	c := Load(path)
	r, ok := c.ByID(11)
	require.True(t, ok)
	assert.Equal(t, model.DefaultTag, r.Tag)
	assert.Equal(t, 0.0, r.TotalCalories)
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Macros)
	assert.NotNil(t, r.Restrictions)
	assert.Empty(t, r.Ingredients)
}

func TestByIDUnknown(t *testing.T) {
	c := New([]model.Recipe{{ID: 1, Name: "Cuscuz"}})

	_, ok := c.ByID(2)
	assert.False(t, ok)
}

func TestNewDoesNotAliasInput(t *testing.T) {
	src := []model.Recipe{{ID: 1, Name: "Cuscuz", Tag: "Salgado"}}
	c := New(src)

	src[0].Name = "mutated"
	r, ok := c.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Cuscuz", r.Name)
}
