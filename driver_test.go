package saturnlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := ParseProgram(strings.NewReader(src))
	require.NoError(t, err)
	return prog
}

// Scenario A: transitive closure over an edge relation.
func TestScenarioEdgePath(t *testing.T) {
	prog := mustCompile(t, `
		edge a b .
		edge b c .
		edge c d .
		path X Y :- edge X Y .
		path X Z :- edge X Y, path Y Z .
	`)

	models := NewDriver(prog).Run()
	require.Len(t, models, 1, "expected exactly one saturated model")

	got := factStrings(models[0], "path")
	want := []string{"path a b", "path b c", "path c d", "path a c", "path b d", "path a d"}
	assert.ElementsMatch(t, want, got)
}

// Scenario B: two rules derive conflicting values for the same functional
// relation key, pruning the only candidate database.
func TestScenarioFunctionalInconsistency(t *testing.T) {
	prog := mustCompile(t, `
		resident celeste .
		home P = uplands :- resident P .
		home P = doghouse :- resident P .
	`)

	models := NewDriver(prog).Run()
	assert.Empty(t, models)
}

// Scenario C: an exhaustive binary choice over two independent entities
// enumerates all four combinations.
func TestScenarioExhaustiveChoice(t *testing.T) {
	prog := mustCompile(t, `
		thing a .
		thing b .
		color X = { red, blue } :- thing X .
	`)

	models := NewDriver(prog).Run()
	require.Len(t, models, 4)

	var combos []string
	for _, m := range models {
		combos = append(combos, strings.Join(factStrings(m, "color"), "; "))
	}
	assert.ElementsMatch(t, []string{
		"color a = red; color b = red",
		"color a = red; color b = blue",
		"color a = blue; color b = red",
		"color a = blue; color b = blue",
	}, combos)
}

// Scenario D: same as C, plus a constraint forbidding a and b from
// sharing a color.
func TestScenarioChoiceWithConstraint(t *testing.T) {
	prog := mustCompile(t, `
		thing a .
		thing b .
		color X = { red, blue } :- thing X .
		! :- color a = V, color b = V .
	`)

	models := NewDriver(prog).Run()
	require.Len(t, models, 2)

	var combos []string
	for _, m := range models {
		combos = append(combos, strings.Join(factStrings(m, "color"), "; "))
	}
	assert.ElementsMatch(t, []string{
		"color a = red; color b = blue",
		"color a = blue; color b = red",
	}, combos)
}

// Scenario E: a zero-premise non-exhaustive choice fires once and may
// either take its one alternative or decline.
func TestScenarioOpenWorldPossibility(t *testing.T) {
	prog := mustCompile(t, `p = { false } ? .`)

	models := NewDriver(prog).Run()
	require.Len(t, models, 2)

	var withP, withoutP int
	for _, m := range models {
		if len(m.FactsFor("p")) == 1 {
			withP++
			assert.Equal(t, "p = false", m.FactsFor("p")[0].String())
		} else {
			withoutP++
		}
	}
	assert.Equal(t, 1, withP)
	assert.Equal(t, 1, withoutP)
}

// Scenario F: an inequality-guarded constraint prunes the only candidate
// database once two distinct containers are both found to hold the same
// value.
func TestScenarioInequalityPruning(t *testing.T) {
	prog := mustCompile(t, `
		container c1 .
		container c2 .
		in c1 = doghouse .
		in c2 = doghouse .
		! :- in C1 = doghouse, in C2 = doghouse, C1 != C2 .
	`)

	models := NewDriver(prog).Run()
	assert.Empty(t, models)
}

func factStrings(db *Database, relation string) []string {
	facts := db.FactsFor(relation)
	out := make([]string, len(facts))
	for i, f := range facts {
		out[i] = f.String()
	}
	return out
}
