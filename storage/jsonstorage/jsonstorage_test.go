package jsonstorage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dszqbsm/evocrawler/evolution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *evolution.Record {
	rec := evolution.New("https://www.fut.gg/evolutions/148-attacking-fullback/")
	rec.ID = "148-attacking-fullback"
	rec.Name = "Défenseur <Offensif> & Co"
	rec.UnlockDate = "2024-03-01"
	rec.Requirements["Overall"] = "Max 84"
	rec.Challenges = append(rec.Challenges, "Play 5 matches")
	rec.Upgrades = append(rec.Upgrades, evolution.NewUpgrade(1, []string{"+2 Overall"}))
	return rec
}

func TestJSONStoreFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evolutions_full.json")
	s := New(WithPath(path))

	require.NoError(t, s.Save(sampleRecord()))
	require.NoError(t, s.Save(evolution.New("https://www.fut.gg/evolutions/2/")))
	require.NoError(t, s.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"unlock_date\""))
	assert.Contains(t, text, `"name": "Défenseur <Offensif> & Co"`)
	assert.Contains(t, text, `"effects": {}`)
	assert.Contains(t, text, `"new_positions": []`)
	assert.False(t, strings.HasSuffix(text, "\n"))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "148-attacking-fullback", decoded[0]["id"])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestJSONStoreFlushEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, New(WithPath(path)).Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONStoreFlushBadDir(t *testing.T) {
	s := New(WithPath(filepath.Join(t.TempDir(), "missing", "out.json")))
	assert.Error(t, s.Flush())
}

func TestEncodeRoundTrip(t *testing.T) {
	records := []*evolution.Record{sampleRecord()}
	data, err := Encode(records, "  ")
	require.NoError(t, err)

	var back []*evolution.Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, records, back)
}
