package models

import (
	"math"
	"strings"
)

// Difficulty is the pedagogical tier of a shape.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty matches a difficulty label case-insensitively.
func ParseDifficulty(label string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return "", false
}

// DifficultyFromLevel maps the ontology's numeric levels (1-3) to tiers.
func DifficultyFromLevel(level int) (Difficulty, bool) {
	switch level {
	case 1:
		return DifficultyEasy, true
	case 2:
		return DifficultyMedium, true
	case 3:
		return DifficultyHard, true
	}
	return "", false
}

// ShapeKind is the tagged variant that selects the area computation.
// Shapes loaded from an ontology that match no known kind get
// KindUnknown and cannot be used for problem generation.
type ShapeKind string

const (
	KindSquare        ShapeKind = "square"
	KindRectangle     ShapeKind = "rectangle"
	KindTriangle      ShapeKind = "triangle"
	KindCircle        ShapeKind = "circle"
	KindTrapezoid     ShapeKind = "trapezoid"
	KindParallelogram ShapeKind = "parallelogram"
	KindUnknown       ShapeKind = "unknown"
)

// KindForName resolves a shape name to its kind, case-insensitively.
func KindForName(name string) ShapeKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square":
		return KindSquare
	case "rectangle":
		return KindRectangle
	case "triangle":
		return KindTriangle
	case "circle":
		return KindCircle
	case "trapezoid":
		return KindTrapezoid
	case "parallelogram":
		return KindParallelogram
	}
	return KindUnknown
}

// ParameterRange defines the valid draw range for one dimension.
type ParameterRange struct {
	Min int
	Max int
}

// Parameter is one named dimension of a shape with its draw range.
// Radial parameters draw from the (tighter) radius range so computed
// areas stay readable.
type Parameter struct {
	Name   string
	Radial bool
	Range  ParameterRange
}

// ShapeDefinition is the static description of one geometric shape.
// Definitions are immutable once loaded; the catalog hands out copies.
type ShapeDefinition struct {
	Name            string
	Kind            ShapeKind
	FormulaTemplate string
	Difficulty      Difficulty
	Description     string
	Parent          string
	Params          []Parameter
}

// BuildParams returns the parameter spec for a kind with concrete
// draw ranges filled in.
func (k ShapeKind) BuildParams(linear, radius ParameterRange) []Parameter {
	names, radial := k.paramNames()
	params := make([]Parameter, 0, len(names))
	for i, name := range names {
		r := linear
		if radial[i] {
			r = radius
		}
		params = append(params, Parameter{Name: name, Radial: radial[i], Range: r})
	}
	return params
}

func (k ShapeKind) paramNames() (names []string, radial []bool) {
	switch k {
	case KindSquare:
		return []string{"side"}, []bool{false}
	case KindRectangle:
		return []string{"length", "width"}, []bool{false, false}
	case KindTriangle:
		return []string{"base", "height"}, []bool{false, false}
	case KindCircle:
		return []string{"radius"}, []bool{true}
	case KindTrapezoid:
		return []string{"base1", "base2", "height"}, []bool{false, false, false}
	case KindParallelogram:
		return []string{"base", "height"}, []bool{false, false}
	}
	return nil, nil
}

// Area computes the exact area for this kind from named parameter
// values. Unknown kinds have no area function and return 0.
func (k ShapeKind) Area(params map[string]float64) float64 {
	switch k {
	case KindSquare:
		return squareArea(params)
	case KindRectangle:
		return rectangleArea(params)
	case KindTriangle:
		return triangleArea(params)
	case KindCircle:
		return circleArea(params)
	case KindTrapezoid:
		return trapezoidArea(params)
	case KindParallelogram:
		return parallelogramArea(params)
	}
	return 0
}

func squareArea(p map[string]float64) float64 {
	return p["side"] * p["side"]
}

func rectangleArea(p map[string]float64) float64 {
	return p["length"] * p["width"]
}

func triangleArea(p map[string]float64) float64 {
	return 0.5 * p["base"] * p["height"]
}

func circleArea(p map[string]float64) float64 {
	return math.Pi * p["radius"] * p["radius"]
}

func trapezoidArea(p map[string]float64) float64 {
	return 0.5 * (p["base1"] + p["base2"]) * p["height"]
}

func parallelogramArea(p map[string]float64) float64 {
	return p["base"] * p["height"]
}
