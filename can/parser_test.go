package can

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParser() *Parser {
	return NewParser(0,
		[]SignalSpec{
			{"LWI_Lenkradwinkel", "LWI_01", 0},
			{"GE_Fahrstufe", "Getriebe_11", 5},
		},
		[]CheckSpec{
			{"LWI_01", 100},
			{"Getriebe_11", 20},
		},
	)
}

func TestDefaultsBeforeObserved(t *testing.T) {
	p := testParser()
	s := p.Signals()
	assert.Equal(t, 0.0, s.Get("LWI_01", "LWI_Lenkradwinkel"))
	assert.Equal(t, 5.0, s.Get("Getriebe_11", "GE_Fahrstufe"))
	assert.Equal(t, 0.0, s.Get("Nope", "Missing"))
	assert.False(t, s.Bool("Nope", "Missing"))
}

func TestUpdateIgnoresUnregistered(t *testing.T) {
	p := testParser()
	p.Update([]SignalValue{
		{"LWI_01", "LWI_Lenkradwinkel", 12.5},
		{"ACC_06", "ACC_Status_ACC", 3},
	})
	s := p.Signals()
	assert.Equal(t, 12.5, s.Get("LWI_01", "LWI_Lenkradwinkel"))
	assert.Equal(t, 0.0, s.Get("ACC_06", "ACC_Status_ACC"))
}

func TestSignalsIsSnapshot(t *testing.T) {
	p := testParser()
	s := p.Signals()
	p.Update([]SignalValue{{"LWI_01", "LWI_Lenkradwinkel", 1}})
	assert.Equal(t, 0.0, s.Get("LWI_01", "LWI_Lenkradwinkel"))
}

func TestValid(t *testing.T) {
	p := testParser()
	now := time.Unix(1000, 0)
	p.now = func() time.Time { return now }
	require.False(t, p.Valid())

	p.Update([]SignalValue{
		{"LWI_01", "LWI_Lenkradwinkel", 1},
		{"Getriebe_11", "GE_Fahrstufe", 8},
	})
	require.True(t, p.Valid())

	// LWI_01 at 100 Hz times out after 50 ms
	now = now.Add(60 * time.Millisecond)
	assert.False(t, p.Valid())
}
