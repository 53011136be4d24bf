package maputils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMap = map[string]any{
	"str":    "val",
	"float":  float64(42),
	"number": json.Number("9007199254740993"),
	"bool":   true,
	"map":    map[string]any{"nested": "x"},
	"time":   "2022-06-09T12:47:28Z",
}

func TestStrVal(t *testing.T) {
	assert.Equal(t, "val", StrVal(testMap, "str"))
	assert.Empty(t, StrVal(testMap, "missing"))
	assert.Empty(t, StrVal(testMap, "float"))
	assert.Empty(t, StrVal(nil, "str"))
}

func TestIntVal(t *testing.T) {
	assert.Equal(t, int64(42), IntVal(testMap, "float"))
	assert.Equal(t, int64(9007199254740993), IntVal(testMap, "number"))
	assert.Zero(t, IntVal(testMap, "str"))
	assert.Zero(t, IntVal(testMap, "missing"))
}

func TestBoolVal(t *testing.T) {
	assert.True(t, BoolVal(testMap, "bool"))
	assert.False(t, BoolVal(testMap, "str"))
	assert.False(t, BoolVal(testMap, "missing"))
}

func TestMapVal(t *testing.T) {
	assert.Equal(t, map[string]any{"nested": "x"}, MapVal(testMap, "map"))
	assert.Nil(t, MapVal(testMap, "str"))
	assert.Nil(t, MapVal(testMap, "missing"))
}

func TestTimeVal(t *testing.T) {
	parsed := TimeVal(testMap, "time")
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2022, 6, 9, 12, 47, 28, 0, time.UTC), parsed.UTC())

	assert.Nil(t, TimeVal(testMap, "str"))
	assert.Nil(t, TimeVal(testMap, "float"))
	assert.Nil(t, TimeVal(testMap, "missing"))
}

func TestScalarStrVal(t *testing.T) {
	assert.Equal(t, "val", ScalarStrVal(testMap, "str"))
	assert.Equal(t, "42", ScalarStrVal(testMap, "float"))
	assert.Equal(t, "9007199254740993", ScalarStrVal(testMap, "number"))
	assert.Empty(t, ScalarStrVal(testMap, "bool"))
	assert.Empty(t, ScalarStrVal(testMap, "missing"))
}
