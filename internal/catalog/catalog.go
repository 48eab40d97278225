// Package catalog holds the in-memory recipe catalog. The catalog is built
// once at startup and is read-only afterwards, so lookups need no locking.
package catalog

import (
	"encoding/json"
	"log"
	"os"

	"github.com/namuapp/receitas-api/internal/model"
)

// Catalog is the immutable recipe collection.
type Catalog struct {
	recipes []model.Recipe
	byID    map[int]*model.Recipe
}

// New builds a catalog from already-decoded records. Records are normalized
// (implicit dataset defaults applied) and indexed by id. Ids are unique in
// the dataset; on a duplicate the first record wins the index slot.
func New(recipes []model.Recipe) *Catalog {
	c := &Catalog{
		recipes: make([]model.Recipe, len(recipes)),
		byID:    make(map[int]*model.Recipe, len(recipes)),
	}
	copy(c.recipes, recipes)
	for i := range c.recipes {
		c.recipes[i].Normalize()
		if _, ok := c.byID[c.recipes[i].ID]; !ok {
			c.byID[c.recipes[i].ID] = &c.recipes[i]
		}
	}
	return c
}

// Load reads the dataset file at path and builds the catalog. A missing or
// unparsable dataset is not fatal: the server must still come up and report
// zero recipes, so both cases degrade to an empty catalog with a warning.
func Load(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("warning: dataset %s not readable: %v; starting with empty catalog", path, err)
		return New(nil)
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		log.Printf("warning: dataset %s not valid JSON: %v; starting with empty catalog", path, err)
		return New(nil)
	}
	return New(recipes)
}

// ByID returns the recipe with the given id, or false when no such record
// exists.
func (c *Catalog) ByID(id int) (*model.Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// All returns every recipe in dataset order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []model.Recipe {
	return c.recipes
}

// Len reports the number of recipes in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}
