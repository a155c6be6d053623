package ontology

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geomtutor/internal/logger"
	"geomtutor/internal/models"
)

const wellFormedOWL = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:geo="http://www.example.org/geometry#">
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#PentagonAreaFormula">
    <geo:hasFormulaExpression>(5/2) × side × apothem</geo:hasFormulaExpression>
  </owl:NamedIndividual>
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#SquareAreaFormula">
    <geo:hasFormulaExpression>side²</geo:hasFormulaExpression>
  </owl:NamedIndividual>
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#Level2">
    <geo:hasDifficultyValue>2</geo:hasDifficultyValue>
  </owl:NamedIndividual>
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#PentagonType">
    <geo:hasDescription>A polygon with five sides</geo:hasDescription>
    <geo:hasFormula rdf:resource="http://www.example.org/geometry#PentagonAreaFormula"/>
    <geo:hasDifficulty rdf:resource="http://www.example.org/geometry#Level2"/>
  </owl:NamedIndividual>
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#SquareType">
    <geo:hasDescription>A rectangle with all sides equal</geo:hasDescription>
    <geo:hasFormula rdf:resource="http://www.example.org/geometry#SquareAreaFormula"/>
    <geo:hasDifficulty rdf:resource="http://www.example.org/geometry#easy"/>
  </owl:NamedIndividual>
</rdf:RDF>`

func testLoader(t *testing.T) *Loader {
	t.Helper()
	log := logger.NewZerolog(io.Discard, zerolog.Disabled)
	return NewLoader(log,
		models.ParameterRange{Min: 1, Max: 20},
		models.ParameterRange{Min: 1, Max: 15})
}

func TestParse_WellFormed(t *testing.T) {
	loader := testLoader(t)

	defs, err := loader.Parse([]byte(wellFormedOWL))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	byName := make(map[string]models.ShapeDefinition)
	for _, def := range defs {
		byName[def.Name] = def
	}

	t.Run("custom shape via numeric level", func(t *testing.T) {
		pentagon, ok := byName["Pentagon"]
		require.True(t, ok)
		assert.Equal(t, "(5/2) × side × apothem", pentagon.FormulaTemplate)
		assert.Equal(t, models.DifficultyMedium, pentagon.Difficulty)
		assert.Equal(t, "A polygon with five sides", pentagon.Description)
		assert.Equal(t, models.KindUnknown, pentagon.Kind)
		assert.Empty(t, pentagon.Params)
	})

	t.Run("known shape via textual difficulty", func(t *testing.T) {
		square, ok := byName["Square"]
		require.True(t, ok)
		assert.Equal(t, models.KindSquare, square.Kind)
		assert.Equal(t, models.DifficultyEasy, square.Difficulty)
		require.Len(t, square.Params, 1)
		assert.Equal(t, "side", square.Params[0].Name)
		assert.Equal(t, models.ParameterRange{Min: 1, Max: 20}, square.Params[0].Range)
	})
}

func TestParse_MalformedEntrySkipped(t *testing.T) {
	loader := testLoader(t)

	// HexagonType has no description, no formula and no difficulty;
	// it must be skipped without aborting the load.
	doc := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xmlns:geo="http://www.example.org/geometry#">
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#HexagonType"/>
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#CircleAreaFormula">
    <geo:hasFormulaExpression>π × radius²</geo:hasFormulaExpression>
  </owl:NamedIndividual>
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#CircleType">
    <geo:hasDescription>A set of points equidistant from center</geo:hasDescription>
    <geo:hasFormula rdf:resource="http://www.example.org/geometry#CircleAreaFormula"/>
    <geo:hasDifficulty rdf:resource="http://www.example.org/geometry#Medium"/>
  </owl:NamedIndividual>
</rdf:RDF>`

	defs, err := loader.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Circle", defs[0].Name)
}

func TestParse_Undecodable(t *testing.T) {
	loader := testLoader(t)

	_, err := loader.Parse([]byte("this is not xml"))
	assert.Error(t, err)
}

func TestParse_NoValidShapes(t *testing.T) {
	loader := testLoader(t)

	doc := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:NamedIndividual rdf:about="http://www.example.org/geometry#SomethingElse"/>
</rdf:RDF>`

	_, err := loader.Parse([]byte(doc))
	assert.Error(t, err)
}

func TestLoad_MissingPathFallsBack(t *testing.T) {
	loader := testLoader(t)

	defs := loader.Load(filepath.Join(t.TempDir(), "absent.owl"))
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	assert.Equal(t, []string{"Square", "Rectangle", "Triangle", "Circle", "Trapezoid", "Parallelogram"}, names)
}

func TestLoad_RoundTrip(t *testing.T) {
	loader := testLoader(t)

	path := filepath.Join(t.TempDir(), "geometry.owl")
	require.NoError(t, os.WriteFile(path, []byte(wellFormedOWL), 0o644))

	defs := loader.Load(path)
	require.Len(t, defs, 2)
	assert.Equal(t, "Pentagon", defs[0].Name)
}

func TestLoad_CorruptFileFallsBack(t *testing.T) {
	loader := testLoader(t)

	path := filepath.Join(t.TempDir(), "geometry.owl")
	require.NoError(t, os.WriteFile(path, []byte("<broken"), 0o644))

	defs := loader.Load(path)
	assert.Len(t, defs, 6)
}

func TestDefaults(t *testing.T) {
	loader := testLoader(t)
	defs := loader.Defaults()
	require.Len(t, defs, 6)

	for _, def := range defs {
		assert.NotEqual(t, models.KindUnknown, def.Kind, def.Name)
		assert.NotEmpty(t, def.FormulaTemplate, def.Name)
		assert.NotEmpty(t, def.Description, def.Name)
		assert.NotEmpty(t, def.Params, def.Name)
		assert.NotEmpty(t, def.Parent, def.Name)
	}
}

func TestConcepts(t *testing.T) {
	concepts := Concepts()
	assert.Contains(t, concepts, "area")
	assert.Contains(t, concepts, "radius")
}
