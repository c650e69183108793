package refdata

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBand_MarshalJSON(t *testing.T) {
	t.Run("both sides", func(t *testing.T) {
		data, err := json.Marshal(Band{Low: 100, High: 180.5})
		require.NoError(t, err)
		assert.JSONEq(t, `{"low":100,"high":180.5}`, string(data))
	})

	t.Run("undefined sides are null", func(t *testing.T) {
		data, err := json.Marshal(UnknownBand())
		require.NoError(t, err)
		assert.JSONEq(t, `{"low":null,"high":null}`, string(data))
	})
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 100.0, parseNumber("100"))
	assert.Equal(t, -0.5, parseNumber(" -0.5 "))
	assert.True(t, math.IsNaN(parseNumber("")))
	assert.True(t, math.IsNaN(parseNumber("n/a")))
	assert.True(t, math.IsNaN(parseNumber("100 bpm")))
}
