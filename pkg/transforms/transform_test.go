package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRow struct {
	Line   string
	Colour string
}

type testBoard struct {
	Name string
	Rows []*testRow
}

func withTransforms(t *testing.T, defs ...*TransformDefinition) {
	t.Helper()

	previous := transforms
	transforms = defs
	t.Cleanup(func() { transforms = previous })
}

func lineColourRule(line string, colour string) *TransformDefinition {
	return &TransformDefinition{
		Type: "transforms.testRow",
		Match: map[string]string{
			"Line": line,
		},
		Data: map[string]interface{}{
			"Colour": colour,
		},
	}
}

func TestTransformUpdatesMatchingStruct(t *testing.T) {
	withTransforms(t, lineColourRule("N", "#FCCC0A"))

	row := &testRow{Line: "N"}
	Transform(row, 1)

	assert.Equal(t, "#FCCC0A", row.Colour)
}

func TestTransformIgnoresNonMatchingStruct(t *testing.T) {
	withTransforms(t, lineColourRule("N", "#FCCC0A"))

	row := &testRow{Line: "G"}
	Transform(row, 1)

	assert.Equal(t, "", row.Colour)
}

func TestTransformRequiresEveryMatchKey(t *testing.T) {
	withTransforms(t, &TransformDefinition{
		Type: "transforms.testRow",
		Match: map[string]string{
			"Line":   "N",
			"Colour": "already",
		},
		Data: map[string]interface{}{
			"Colour": "#FCCC0A",
		},
	})

	row := &testRow{Line: "N"}
	Transform(row, 1)

	assert.Equal(t, "", row.Colour)
}

func TestTransformSliceOfPointers(t *testing.T) {
	withTransforms(t, lineColourRule("N", "#FCCC0A"), lineColourRule("G", "#6CBE45"))

	rows := []*testRow{
		{Line: "N"},
		{Line: "G"},
		{Line: "X"},
	}
	Transform(rows, 1)

	assert.Equal(t, "#FCCC0A", rows[0].Colour)
	assert.Equal(t, "#6CBE45", rows[1].Colour)
	assert.Equal(t, "", rows[2].Colour)
}

func TestTransformRecursesThroughNestedSlices(t *testing.T) {
	withTransforms(t, lineColourRule("N", "#FCCC0A"))

	board := &testBoard{
		Name: "Union Sq",
		Rows: []*testRow{{Line: "N"}},
	}

	Transform(board, 1)
	assert.Equal(t, "", board.Rows[0].Colour)

	Transform(board, 2)
	assert.Equal(t, "#FCCC0A", board.Rows[0].Colour)
}

func TestTransformToleratesOddInputs(t *testing.T) {
	withTransforms(t, lineColourRule("N", "#FCCC0A"))

	Transform(nil, 1)
	Transform(testRow{Line: "N"}, 1)
	Transform((*testRow)(nil), 1)
	Transform([]string{"N"}, 1)
}
