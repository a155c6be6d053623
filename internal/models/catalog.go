package models

import (
	"fmt"
	"strings"
	"sync"
)

// ShapeCatalog is the in-memory view over the loaded shape knowledge.
// Definitions are immutable after construction; accessors return
// copies so callers cannot mutate catalog state.
type ShapeCatalog struct {
	mu     sync.RWMutex
	order  []string
	shapes map[string]ShapeDefinition
}

// NewShapeCatalog builds a catalog from loaded definitions. Duplicate
// names resolve last-seen wins while keeping the first occurrence's
// position, so iteration order stays deterministic.
func NewShapeCatalog(defs []ShapeDefinition) *ShapeCatalog {
	catalog := &ShapeCatalog{
		shapes: make(map[string]ShapeDefinition, len(defs)),
	}
	for _, def := range defs {
		if _, exists := catalog.shapes[def.Name]; !exists {
			catalog.order = append(catalog.order, def.Name)
		}
		catalog.shapes[def.Name] = def
	}
	return catalog
}

// Names returns all shape names in insertion order.
func (sc *ShapeCatalog) Names() []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	names := make([]string, len(sc.order))
	copy(names, sc.order)
	return names
}

// NamesByDifficulty returns the names of all shapes at the given tier,
// in insertion order.
func (sc *ShapeCatalog) NamesByDifficulty(d Difficulty) []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	var names []string
	for _, name := range sc.order {
		if sc.shapes[name].Difficulty == d {
			names = append(names, name)
		}
	}
	return names
}

// Get looks up a shape definition by name.
func (sc *ShapeCatalog) Get(name string) (ShapeDefinition, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	def, exists := sc.shapes[name]
	if !exists {
		return ShapeDefinition{}, NewShapeNotFoundError(name)
	}
	return copyDefinition(def), nil
}

// Count returns the number of shapes in the catalog.
func (sc *ShapeCatalog) Count() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.order)
}

// Summary produces a human-readable listing of every shape with its
// formula, difficulty and description.
func (sc *ShapeCatalog) Summary() string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Loaded %d shapes:\n", len(sc.order))
	for _, name := range sc.order {
		def := sc.shapes[name]
		fmt.Fprintf(&b, "  - %s (%s): Area = %s. %s\n",
			def.Name, def.Difficulty, def.FormulaTemplate, def.Description)
	}
	return b.String()
}

func copyDefinition(def ShapeDefinition) ShapeDefinition {
	params := make([]Parameter, len(def.Params))
	copy(params, def.Params)
	def.Params = params
	return def
}
