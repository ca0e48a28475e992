package evolution

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordKeys(t *testing.T) {
	data, err := json.Marshal(New("https://www.fut.gg/evolutions/1-a/"))
	require.NoError(t, err)

	keys := []string{
		"unlock_date", "expires_on", "cost", "requirements", "total_upgrades",
		"challenges", "upgrades", "new_positions", "playstyles_added",
		"playstyles_plus_added", "final_bonus", "id", "name", "url",
	}
	last := -1
	for _, k := range keys {
		idx := strings.Index(string(data), `"`+k+`":`)
		require.True(t, idx > last, "key %s out of order", k)
		last = idx
	}
	assert.NotContains(t, string(data), "null")
}

func TestNewUpgrade(t *testing.T) {
	u := NewUpgrade(3, nil)
	assert.Equal(t, 3, u.Step)
	assert.NotNil(t, u.Description)
	assert.NotNil(t, u.Effects)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"step":3,"description":[],"effects":{}}`, string(data))
}
