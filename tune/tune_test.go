package tune

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/carcontrol/car"
)

func tunePath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "live_tune.json")
}

func TestDefaultsWithoutBaseline(t *testing.T) {
	s, err := New(Options{Path: tunePath(t)})
	require.NoError(t, err)

	p := s.Profile()
	assert.False(t, p.Enabled)
	assert.Equal(t, []float64{0}, p.KpBP)
	assert.Equal(t, []float64{0}, p.KpV)
	assert.Equal(t, []float64{0}, p.KiBP)
	assert.Equal(t, []float64{0}, p.KiV)
	assert.Equal(t, 0.0, p.Kf)
}

func TestDefaultsFromBaseline(t *testing.T) {
	kf := 0.5
	s, err := New(Options{
		Path: tunePath(t),
		Baseline: &car.LateralTuning{
			KpBP: []float64{0, 20}, KpV: []float64{0.4, 0.8},
			KiBP: []float64{0}, KiV: []float64{0.2},
			Kf: 0.00006,
		},
		KiV: []float64{0.3},
		Kf:  &kf,
	})
	require.NoError(t, err)

	p := s.Profile()
	assert.Equal(t, []float64{0, 20}, p.KpBP)
	assert.Equal(t, []float64{0.4, 0.8}, p.KpV)
	assert.Equal(t, []float64{0.3}, p.KiV)
	assert.Equal(t, 0.5, p.Kf)
	assert.InDelta(t, 0.6, p.Kp(10), 1e-9)
}

func TestExplicitValuesWithoutBaseline(t *testing.T) {
	enabled := true
	s, err := New(Options{
		Path:    tunePath(t),
		Enabled: &enabled,
		KpBP:    []float64{0, 10},
		KpV:     []float64{1, 2},
	})
	require.NoError(t, err)

	p := s.Profile()
	assert.True(t, p.Enabled)
	assert.Equal(t, []float64{0, 10}, p.KpBP)
	assert.Equal(t, []float64{0}, p.KiBP)
}

func TestCurveLengthMismatch(t *testing.T) {
	_, err := New(Options{
		Path: tunePath(t),
		KpBP: []float64{0, 10},
		KpV:  []float64{1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCurveLength)

	_, err = New(Options{
		Path:     tunePath(t),
		Baseline: &car.LateralTuning{KpBP: []float64{0}, KpV: []float64{1}, KiBP: []float64{0, 1}, KiV: []float64{1}},
	})
	assert.ErrorIs(t, err, ErrCurveLength)
}

func TestRoundTrip(t *testing.T) {
	path := tunePath(t)
	s, err := New(Options{Path: path})
	require.NoError(t, err)

	want := Profile{
		Enabled: true,
		KpBP:    []float64{0, 5.5, 30},
		KpV:     []float64{0.25, 0.5, 1.125},
		KiBP:    []float64{0, 30},
		KiV:     []float64{0.05, 0.1},
		Kf:      0.0000675,
	}
	require.NoError(t, s.Set(want))
	require.NoError(t, s.Save())

	loaded, err := New(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, want, loaded.Profile())
}

func TestUnknownKeyIgnored(t *testing.T) {
	path := tunePath(t)
	doc := `{"kf": 0.25, "mystery": [1, 2, 3], "kpBP": [0, 1], "kpV": [3, 4]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := New(Options{Path: path})
	require.NoError(t, err)
	p := s.Profile()
	assert.Equal(t, 0.25, p.Kf)
	assert.Equal(t, []float64{0, 1}, p.KpBP)
	assert.Equal(t, []float64{3, 4}, p.KpV)

	// the file is normalized on construction
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "mystery")
	assert.Contains(t, string(data), "\n    \"enabled\": false")
}

func TestSavedKeysSorted(t *testing.T) {
	data, err := Marshal(Profile{KpBP: []float64{0}, KpV: []float64{1}})
	require.NoError(t, err)

	want := `{
    "enabled": false,
    "kf": 0,
    "kiBP": [],
    "kiV": [],
    "kpBP": [
        0
    ],
    "kpV": [
        1
    ]
}
`
	assert.Equal(t, want, string(data))
}

func TestUnreadableStoreKeepsDefaults(t *testing.T) {
	cases := map[string]string{
		"corrupt":      `{"kf": `,
		"wrong shape":  `[1, 2]`,
		"inconsistent": `{"kpBP": [0, 1, 2]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			path := tunePath(t)
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

			s, err := New(Options{Path: path})
			require.NoError(t, err)
			assert.Equal(t, []float64{0}, s.Profile().KpBP)
			assert.Equal(t, 0.0, s.Profile().Kf)
		})
	}

	s, err := New(Options{Path: filepath.Join(t.TempDir(), "missing", "live_tune.json")})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, s.Profile().KpV)
}

func TestBadValueTypeSkipsOnlyThatKey(t *testing.T) {
	path := tunePath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"enabled": "yes", "kf": 2}`), 0o644))

	s, err := New(Options{Path: path})
	require.NoError(t, err)
	assert.False(t, s.Profile().Enabled)
	assert.Equal(t, 2.0, s.Profile().Kf)
}

func TestSetRejectsInvalid(t *testing.T) {
	s, err := New(Options{Path: tunePath(t)})
	require.NoError(t, err)

	err = s.Set(Profile{KpBP: []float64{0, 1}, KpV: []float64{1}})
	assert.ErrorIs(t, err, ErrCurveLength)
	err = s.Set(Profile{KpBP: []float64{2, 1}, KpV: []float64{1, 1}})
	assert.ErrorIs(t, err, ErrUnsortedBreakpoints)
	assert.Equal(t, []float64{0}, s.Profile().KpBP)
}

func TestReadFile(t *testing.T) {
	path := tunePath(t)
	_, err := ReadFile(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"kf": 3, "kiBP": [0, 10], "kiV": [1, 2]}`), 0o644))
	p, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Kf)
	assert.Equal(t, 1.5, p.Ki(5))
	assert.Equal(t, []float64{0}, p.KpBP)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "enabled", "ReadFile does not rewrite the file")
}
