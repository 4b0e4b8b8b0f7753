package cssom_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/wisp/style"
	"github.com/veridian-labs/wisp/style/cssom"
)

const testCSS = `
div { color: red; }
.highlight { color: blue; font-weight: bold; }
#special { color: green; }
p { margin: 3px 6px; }
`

func TestCompileBucketsByRightmostCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wisp.cssom")
	defer teardown()

	sheet, next, err := cssom.Compile(testCSS, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, next)

	require.Contains(t, sheet.ByTag, "div")
	require.Contains(t, sheet.ByClass, "highlight")
	require.Contains(t, sheet.ByID, "special")
	require.Contains(t, sheet.ByTag, "p")
}

func TestCompileAssignsSourceOrderIndex(t *testing.T) {
	sheet, _, err := cssom.Compile(testCSS, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, sheet.ByTag["div"][0].Index)
	assert.Equal(t, 13, sheet.ByTag["p"][0].Index)
}

func TestCompileExpandsMarginShorthand(t *testing.T) {
	sheet, _, err := cssom.Compile(testCSS, 0)
	require.NoError(t, err)

	decls := sheet.ByTag["p"][0].Declarations
	byKey := map[string]style.Value{}
	for _, kv := range decls {
		byKey[kv.Key] = kv.Value
	}
	assert.Equal(t, 3.0, byKey["margin-top"].Num)
	assert.Equal(t, 6.0, byKey["margin-right"].Num)
	assert.Equal(t, 3.0, byKey["margin-bottom"].Num)
	assert.Equal(t, 6.0, byKey["margin-left"].Num)
}

func TestCompileMapsBackgroundToBackgroundColor(t *testing.T) {
	sheet, _, err := cssom.Compile(`div { background: red; }`, 0)
	require.NoError(t, err)

	decls := sheet.ByTag["div"][0].Declarations
	require.Len(t, decls, 1)
	assert.Equal(t, "background-color", decls[0].Key)
	assert.Equal(t, style.KindColor, decls[0].Value.Kind)
	assert.Equal(t, uint8(0xff), decls[0].Value.Color.R)
}

func TestCompileSortsBucketsBySpecificityThenIndex(t *testing.T) {
	sheet, _, err := cssom.Compile(`
div { color: red; }
.a div { color: blue; }
`, 0)
	require.NoError(t, err)
	bucket := sheet.ByTag["div"]
	require.Len(t, bucket, 2)
	assert.True(t, bucket[0].Specificity.Less(bucket[1].Specificity))
}

func TestMergeCombinesAndResorts(t *testing.T) {
	first, next, err := cssom.Compile(`div { color: red; }`, 0)
	require.NoError(t, err)
	second, _, err := cssom.Compile(`#x { color: green; }`, next)
	require.NoError(t, err)

	first.Merge(second)
	assert.Contains(t, first.ByTag, "div")
	assert.Contains(t, first.ByID, "x")
}

func TestCompileInvalidSelectorIsSkippedNotFatal(t *testing.T) {
	sheet, _, err := cssom.Compile(`div { color: red; } ###bad { color: blue; }`, 0)
	require.NoError(t, err)
	assert.Contains(t, sheet.ByTag, "div")
}

func TestCompileInline(t *testing.T) {
	decls, err := cssom.CompileInline("color: red; font-weight: bold")
	require.NoError(t, err)
	byKey := map[string]style.Value{}
	for _, kv := range decls {
		byKey[kv.Key] = kv.Value
	}
	assert.Equal(t, style.KindColor, byKey["color"].Kind)
	assert.Equal(t, "bold", byKey["font-weight"].Keyword)
}
