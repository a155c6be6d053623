package ontology

import "geomtutor/internal/models"

// Defaults returns the built-in shape table used when no ontology
// document can be loaded. It covers the six shapes the engine knows
// how to parameterize and never fails.
func (l *Loader) Defaults() []models.ShapeDefinition {
	entries := []struct {
		name        string
		formula     string
		difficulty  models.Difficulty
		description string
	}{
		{"Square", "side²", models.DifficultyEasy, "A rectangle with all sides equal"},
		{"Rectangle", "length × width", models.DifficultyEasy, "A quadrilateral with four right angles"},
		{"Triangle", "½ × base × height", models.DifficultyMedium, "A polygon with three sides"},
		{"Circle", "π × radius²", models.DifficultyMedium, "A set of points equidistant from center"},
		{"Trapezoid", "½ × (base1 + base2) × height", models.DifficultyHard, "A quadrilateral with one pair of parallel sides"},
		{"Parallelogram", "base × height", models.DifficultyMedium, "A quadrilateral with opposite sides parallel"},
	}

	defs := make([]models.ShapeDefinition, 0, len(entries))
	for _, e := range entries {
		kind := models.KindForName(e.name)
		defs = append(defs, models.ShapeDefinition{
			Name:            e.name,
			Kind:            kind,
			FormulaTemplate: e.formula,
			Difficulty:      e.difficulty,
			Description:     e.description,
			Parent:          parentConcept(kind),
			Params:          kind.BuildParams(l.linear, l.radius),
		})
	}
	return defs
}

// parentConcept maps a shape kind to its parent concept in the
// geometry hierarchy.
func parentConcept(kind models.ShapeKind) string {
	switch kind {
	case models.KindSquare:
		return "rectangle"
	case models.KindRectangle, models.KindTrapezoid, models.KindParallelogram:
		return "quadrilateral"
	case models.KindTriangle:
		return "polygon"
	case models.KindCircle:
		return "conic section"
	}
	return "shape"
}

// Concepts returns the fixed glossary of geometry concepts shown in
// the ontology info view.
func Concepts() map[string]string {
	return map[string]string{
		"area":      "The amount of space inside a 2D shape",
		"perimeter": "The distance around a 2D shape",
		"base":      "The bottom side of a shape",
		"height":    "Perpendicular distance from base to top",
		"radius":    "Distance from center to edge of circle",
	}
}
