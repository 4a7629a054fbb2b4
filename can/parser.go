// Package can holds the decoded-signal boundary between the external signal
// codec and the state estimator. Frames are decoded elsewhere; this package
// only tracks named signal values per message and their liveness.
package can

import (
	"sync"
	"time"
)

type SignalKey struct {
	Message string
	Signal  string
}

// SignalSpec registers a signal with the value used until it is observed.
type SignalSpec struct {
	Signal  string
	Message string
	Default float64
}

// CheckSpec is a message whose arrival rate is monitored. Frequency is in Hz.
type CheckSpec struct {
	Message   string
	Frequency int
}

// SignalValue is one decoded value as delivered by the codec.
type SignalValue struct {
	Message string
	Signal  string
	Value   float64
}

// Signals is a read only snapshot of the values of one bus for one cycle.
// Missing keys resolve to their registered default, unregistered keys to 0.
type Signals struct {
	values map[SignalKey]float64
}

func NewSignals(values map[SignalKey]float64) Signals {
	return Signals{values: values}
}

func (s Signals) Get(message, signal string) float64 {
	return s.values[SignalKey{Message: message, Signal: signal}]
}

func (s Signals) Bool(message, signal string) bool {
	return s.Get(message, signal) != 0
}

// Parser accumulates decoded values for one bus.
type Parser struct {
	Bus      uint8
	signals  []SignalSpec
	checks   []CheckSpec
	values   map[SignalKey]float64
	lastSeen map[string]time.Time
	mu       sync.Mutex
	now      func() time.Time
}

func NewParser(bus uint8, signals []SignalSpec, checks []CheckSpec) *Parser {
	p := &Parser{
		Bus:      bus,
		signals:  signals,
		checks:   checks,
		values:   make(map[SignalKey]float64, len(signals)),
		lastSeen: make(map[string]time.Time, len(checks)),
		now:      time.Now,
	}
	for _, s := range signals {
		p.values[SignalKey{Message: s.Message, Signal: s.Signal}] = s.Default
	}
	return p
}

// Update merges newly decoded values. Values for signals that were never
// registered are dropped.
func (p *Parser) Update(values []SignalValue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	for _, v := range values {
		key := SignalKey{Message: v.Message, Signal: v.Signal}
		if _, ok := p.values[key]; !ok {
			continue
		}
		p.values[key] = v.Value
		p.lastSeen[v.Message] = now
	}
}

// Signals copies the current values so the estimator reads a stable view.
func (p *Parser) Signals() Signals {
	p.mu.Lock()
	defer p.mu.Unlock()
	values := make(map[SignalKey]float64, len(p.values))
	for k, v := range p.values {
		values[k] = v
	}
	return NewSignals(values)
}

// Valid reports whether every checked message arrived within five of its
// expected periods.
func (p *Parser) Valid() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	for _, c := range p.checks {
		seen, ok := p.lastSeen[c.Message]
		if !ok {
			return false
		}
		if c.Frequency <= 0 {
			continue
		}
		timeout := 5 * time.Second / time.Duration(c.Frequency)
		if now.Sub(seen) > timeout {
			return false
		}
	}
	return true
}

func (p *Parser) Checks() []CheckSpec {
	return p.checks
}
