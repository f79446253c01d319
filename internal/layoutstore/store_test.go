package layoutstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, Save(s, "k", StoredLayout{TopPct: 70, LeftPct: 40}))

	got, ok := Load(s, "k")
	require.True(t, ok)
	assert.Equal(t, StoredLayout{TopPct: 70, LeftPct: 40}, got)
}

func TestLoad_MissingKey(t *testing.T) {
	_, ok := Load(NewMemStore(), "k")
	assert.False(t, ok)
}

func TestLoad_ToleratesBadValues(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"not json", "not json"},
		{"empty", ""},
		{"array", "[1,2]"},
		{"string ratios", `{"topPct":"65","leftPct":"50"}`},
		{"missing leftPct", `{"topPct":65}`},
		{"null ratios", `{"topPct":null,"leftPct":null}`},
		{"bare number", "42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewMemStore()
			require.NoError(t, s.Set("k", tc.value))

			_, ok := Load(s, "k")
			assert.False(t, ok, "value %q should read as absent", tc.value)
		})
	}
}

func TestLoad_IgnoresExtraFields(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Set("k", `{"topPct":66,"leftPct":33,"theme":"dark"}`))

	got, ok := Load(s, "k")
	require.True(t, ok)
	assert.Equal(t, StoredLayout{TopPct: 66, LeftPct: 33}, got)
}

func TestLoadSave_NilStoreAndEmptyKey(t *testing.T) {
	_, ok := Load(nil, "k")
	assert.False(t, ok)
	_, ok = Load(NewMemStore(), "")
	assert.False(t, ok)

	// Disabled persistence is not an error.
	assert.NoError(t, Save(nil, "k", StoredLayout{}))
	assert.NoError(t, Save(NewMemStore(), "", StoredLayout{}))
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Setenv(StateDirEnv, t.TempDir())
	fs, err := NewFileStore()
	require.NoError(t, err)

	_, ok := fs.Get("layout")
	assert.False(t, ok, "missing file reads as absent")

	require.NoError(t, fs.Set("layout", `{"topPct":70,"leftPct":40}`))
	raw, ok := fs.Get("layout")
	require.True(t, ok)
	assert.JSONEq(t, `{"topPct":70,"leftPct":40}`, raw)

	got, ok := Load(fs, "layout")
	require.True(t, ok)
	assert.Equal(t, StoredLayout{TopPct: 70, LeftPct: 40}, got)
}

func TestFileStore_NormalizesKeys(t *testing.T) {
	t.Setenv(StateDirEnv, t.TempDir())
	fs, err := NewFileStore()
	require.NoError(t, err)

	require.NoError(t, fs.Set("My Layout/v2", "x"))
	got, ok := fs.Get("My Layout/v2")
	require.True(t, ok)
	assert.Equal(t, "x", got)

	// Same normalized slot regardless of case and separators.
	got, ok = fs.Get("my layout-v2")
	require.True(t, ok)
	assert.Equal(t, "x", got)
}
