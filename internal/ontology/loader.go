package ontology

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"geomtutor/internal/logger"
	"geomtutor/internal/models"
)

const component = "ontology"

// Loader reads shape knowledge from an OWL (RDF/XML) document and
// falls back to the built-in table when the document is missing or
// unusable. The fallback never fails; callers always receive a
// usable shape list.
type Loader struct {
	log      logger.Logger
	linear   models.ParameterRange
	radius   models.ParameterRange
	validate *validator.Validate
}

// NewLoader creates a loader that fills parameter specs from the
// given draw ranges.
func NewLoader(log logger.Logger, linear, radius models.ParameterRange) *Loader {
	return &Loader{
		log:      log,
		linear:   linear,
		radius:   radius,
		validate: validator.New(),
	}
}

// shapeEntry is the expected schema for one parsed ontology entry.
type shapeEntry struct {
	Name        string `validate:"required"`
	Formula     string `validate:"required"`
	Difficulty  string `validate:"required,oneof=Easy Medium Hard"`
	Description string `validate:"required"`
}

// owlDocument mirrors the RDF/XML structure the tutor recognizes.
// Element tags match on local name so namespace prefixes in the
// source document do not matter.
type owlDocument struct {
	XMLName     xml.Name        `xml:"RDF"`
	Individuals []owlIndividual `xml:"NamedIndividual"`
}

type owlIndividual struct {
	About             string       `xml:"about,attr"`
	Description       string       `xml:"hasDescription"`
	Formula           *owlResource `xml:"hasFormula"`
	Difficulty        *owlResource `xml:"hasDifficulty"`
	FormulaExpression string       `xml:"hasFormulaExpression"`
	DifficultyValue   string       `xml:"hasDifficultyValue"`
}

type owlResource struct {
	Resource string `xml:"resource,attr"`
}

// Load reads the document at path and parses it, degrading to the
// built-in defaults on any failure. Failures are logged, never
// propagated: availability of shape content is the contract here.
func (l *Loader) Load(path string) []models.ShapeDefinition {
	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Warning(component, "ontology file unavailable, using built-in defaults", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return l.Defaults()
	}

	defs, err := l.Parse(data)
	if err != nil {
		l.log.Warning(component, "ontology parse failed, using built-in defaults", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return l.Defaults()
	}

	l.log.Info(component, "ontology loaded", map[string]interface{}{
		"path":   path,
		"shapes": len(defs),
	})
	return defs
}

// Parse extracts shape definitions from OWL document bytes in a
// single pass over the named individuals. Entries that are malformed
// or fail schema validation are skipped individually; the whole parse
// fails only when the document cannot be decoded or yields no valid
// shape at all.
func (l *Loader) Parse(data []byte) ([]models.ShapeDefinition, error) {
	var doc owlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode OWL document: %w", err)
	}

	formulas := l.extractFormulas(doc)
	levels := l.extractLevels(doc)

	var defs []models.ShapeDefinition
	for _, ind := range doc.Individuals {
		name := fragment(ind.About)
		if !strings.HasSuffix(name, "Type") {
			continue
		}

		entry := shapeEntry{
			Name:        strings.TrimSuffix(name, "Type"),
			Formula:     l.resolveFormula(ind, formulas),
			Difficulty:  l.resolveDifficulty(ind, levels),
			Description: strings.TrimSpace(ind.Description),
		}

		if err := l.validate.Struct(entry); err != nil {
			l.log.Warning(component, "skipping malformed ontology entry", map[string]interface{}{
				"entry": name,
				"error": err.Error(),
			})
			continue
		}

		difficulty, _ := models.ParseDifficulty(entry.Difficulty)
		kind := models.KindForName(entry.Name)
		defs = append(defs, models.ShapeDefinition{
			Name:            entry.Name,
			Kind:            kind,
			FormulaTemplate: entry.Formula,
			Difficulty:      difficulty,
			Description:     entry.Description,
			Parent:          parentConcept(kind),
			Params:          kind.BuildParams(l.linear, l.radius),
		})
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("document contains no valid shape entries")
	}
	return defs, nil
}

// extractFormulas collects AreaFormula individuals keyed by fragment name.
func (l *Loader) extractFormulas(doc owlDocument) map[string]string {
	formulas := make(map[string]string)
	for _, ind := range doc.Individuals {
		name := fragment(ind.About)
		if strings.Contains(name, "AreaFormula") && ind.FormulaExpression != "" {
			formulas[name] = strings.TrimSpace(ind.FormulaExpression)
		}
	}
	return formulas
}

// extractLevels collects numeric difficulty level individuals.
func (l *Loader) extractLevels(doc owlDocument) map[string]int {
	levels := make(map[string]int)
	for _, ind := range doc.Individuals {
		name := fragment(ind.About)
		if !strings.Contains(name, "Level") || strings.Contains(name, "Difficulty") {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(ind.DifficultyValue))
		if err != nil {
			continue
		}
		levels[name] = value
	}
	return levels
}

func (l *Loader) resolveFormula(ind owlIndividual, formulas map[string]string) string {
	if ind.Formula == nil {
		return ""
	}
	return formulas[fragment(ind.Formula.Resource)]
}

// resolveDifficulty accepts either a reference to a numeric level
// individual or a textual Easy/Medium/Hard fragment, matched
// case-insensitively.
func (l *Loader) resolveDifficulty(ind owlIndividual, levels map[string]int) string {
	if ind.Difficulty == nil {
		return ""
	}
	ref := fragment(ind.Difficulty.Resource)

	if level, ok := levels[ref]; ok {
		if d, ok := models.DifficultyFromLevel(level); ok {
			return string(d)
		}
		return ""
	}
	if d, ok := models.ParseDifficulty(ref); ok {
		return string(d)
	}
	return ""
}

// fragment returns the part of an IRI after the final '#'.
func fragment(iri string) string {
	if idx := strings.LastIndex(iri, "#"); idx >= 0 {
		return iri[idx+1:]
	}
	return iri
}
