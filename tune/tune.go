package tune

import (
	"encoding/json"
	"log/slog"
	"os"
	"slices"

	"github.com/pkg/errors"
	"pfeifer.dev/carcontrol/car"
	m "pfeifer.dev/carcontrol/math"
	"pfeifer.dev/carcontrol/params"
)

// Keys of the persisted document.
const (
	KEY_ENABLED = "enabled"
	KEY_KP_BP   = "kpBP"
	KEY_KP_V    = "kpV"
	KEY_KI_BP   = "kiBP"
	KEY_KI_V    = "kiV"
	KEY_KF      = "kf"
)

var ErrCurveLength = errors.New("breakpoint and value counts differ")

var ErrUnsortedBreakpoints = errors.New("breakpoints must be non-decreasing")

// Profile is the adjustable lateral gain set read by upstream control.
type Profile struct {
	Enabled bool
	KpBP    []float64
	KpV     []float64
	KiBP    []float64
	KiV     []float64
	Kf      float64
}

func (p Profile) Kp(speed float64) float64 {
	return m.Interp(speed, p.KpBP, p.KpV)
}

func (p Profile) Ki(speed float64) float64 {
	return m.Interp(speed, p.KiBP, p.KiV)
}

func (p Profile) Clone() Profile {
	p.KpBP = slices.Clone(p.KpBP)
	p.KpV = slices.Clone(p.KpV)
	p.KiBP = slices.Clone(p.KiBP)
	p.KiV = slices.Clone(p.KiV)
	return p
}

// Validate checks that each gain curve has as many values as breakpoints and
// that the breakpoints are ordered.
func (p Profile) Validate() error {
	curves := []struct {
		name   string
		bp, vs []float64
	}{
		{"kp", p.KpBP, p.KpV},
		{"ki", p.KiBP, p.KiV},
	}
	for _, c := range curves {
		if len(c.bp) != len(c.vs) {
			return errors.Wrapf(ErrCurveLength, "%s curve has %d breakpoints and %d values", c.name, len(c.bp), len(c.vs))
		}
		if !slices.IsSorted(c.bp) {
			return errors.Wrapf(ErrUnsortedBreakpoints, "%s curve", c.name)
		}
	}
	return nil
}

// Document returns the flat persisted form of the profile.
func (p Profile) Document() map[string]any {
	return map[string]any{
		KEY_ENABLED: p.Enabled,
		KEY_KP_BP:   nonNil(p.KpBP),
		KEY_KP_V:    nonNil(p.KpV),
		KEY_KI_BP:   nonNil(p.KiBP),
		KEY_KI_V:    nonNil(p.KiV),
		KEY_KF:      p.Kf,
	}
}

func nonNil(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}

// Merge copies every recognized key of doc into the profile. Unknown keys are
// skipped. A key whose value has the wrong type is skipped too and reported
// in the returned error; the remaining keys are still applied.
func (p *Profile) Merge(doc map[string]json.RawMessage) error {
	var errs []string
	for key, raw := range doc {
		var err error
		switch key {
		case KEY_ENABLED:
			err = decodeInto(raw, &p.Enabled)
		case KEY_KP_BP:
			err = decodeInto(raw, &p.KpBP)
		case KEY_KP_V:
			err = decodeInto(raw, &p.KpV)
		case KEY_KI_BP:
			err = decodeInto(raw, &p.KiBP)
		case KEY_KI_V:
			err = decodeInto(raw, &p.KiV)
		case KEY_KF:
			err = decodeInto(raw, &p.Kf)
		default:
			continue
		}
		if err != nil {
			errs = append(errs, key)
		}
	}
	if len(errs) > 0 {
		slices.Sort(errs)
		return errors.Errorf("could not decode tuning keys %v", errs)
	}
	return nil
}

// decodeInto only touches dst when raw decodes cleanly.
func decodeInto[T any](raw json.RawMessage, dst *T) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}

// Options configure a Store. A nil field is taken from Baseline, or from a
// single-point zero curve when there is no baseline.
type Options struct {
	Path     string
	Baseline *car.LateralTuning

	Enabled *bool
	KpBP    []float64
	KpV     []float64
	KiBP    []float64
	KiV     []float64
	Kf      *float64
}

// Store owns the live tune profile and its file.
type Store struct {
	path    string
	profile Profile
}

func zeroCurve() []float64 {
	return []float64{0}
}

func pick(explicit []float64, baseline []float64, hasBaseline bool) []float64 {
	if explicit != nil {
		return slices.Clone(explicit)
	}
	if hasBaseline {
		return slices.Clone(baseline)
	}
	return zeroCurve()
}

// New builds the profile from opts, then loads and re-saves the persisted
// document. Only a curve length mismatch in the constructed profile is an
// error; problems with the file are logged and ignored.
func New(opts Options) (*Store, error) {
	var base car.LateralTuning
	hasBaseline := opts.Baseline != nil
	if hasBaseline {
		base = *opts.Baseline
	}

	p := Profile{
		KpBP: pick(opts.KpBP, base.KpBP, hasBaseline),
		KpV:  pick(opts.KpV, base.KpV, hasBaseline),
		KiBP: pick(opts.KiBP, base.KiBP, hasBaseline),
		KiV:  pick(opts.KiV, base.KiV, hasBaseline),
		Kf:   base.Kf,
	}
	if opts.Enabled != nil {
		p.Enabled = *opts.Enabled
	}
	if opts.Kf != nil {
		p.Kf = *opts.Kf
	}

	for _, c := range [][2][]float64{{p.KpBP, p.KpV}, {p.KiBP, p.KiV}} {
		if len(c[0]) != len(c[1]) {
			return nil, errors.Wrapf(ErrCurveLength, "%d breakpoints, %d values", len(c[0]), len(c[1]))
		}
	}

	path := opts.Path
	if path == "" {
		path = params.LiveTunePath
	}

	s := &Store{path: path, profile: p}
	s.Load()
	if err := s.Save(); err != nil {
		slog.Debug("could not persist live tune", "path", path, "error", err)
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() Profile {
	return s.profile.Clone()
}

// Set replaces the profile after validating it.
func (s *Store) Set(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.profile = p.Clone()
	return nil
}

// Load merges the persisted document into the current profile and reports
// whether anything was applied. A missing or malformed file, or one that
// would leave a curve inconsistent, keeps the current profile.
func (s *Store) Load() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		slog.Debug("could not read live tune", "path", s.path, "error", err)
		return false
	}

	var doc map[string]json.RawMessage
	err = json.Unmarshal(data, &doc)
	if err != nil {
		slog.Debug("could not parse live tune", "path", s.path, "error", err)
		return false
	}

	merged := s.profile.Clone()
	err = merged.Merge(doc)
	if err != nil {
		slog.Debug("ignoring part of live tune", "path", s.path, "error", err)
	}
	err = merged.Validate()
	if err != nil {
		slog.Debug("ignoring inconsistent live tune", "path", s.path, "error", err)
		return false
	}

	s.profile = merged
	return true
}

// Save writes every known key, sorted, with four space indentation.
func (s *Store) Save() error {
	data, err := Marshal(s.profile)
	if err != nil {
		return err
	}
	return params.WriteFileAtomic(s.path, data)
}

// Marshal renders the persisted document for p. encoding/json sorts map keys.
func Marshal(p Profile) ([]byte, error) {
	data, err := json.MarshalIndent(p.Document(), "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal live tune")
	}
	return append(data, '\n'), nil
}

// ReadFile decodes the document at path over a zero profile without writing
// anything back. Unlike Load it reports why a file could not be used.
func ReadFile(path string) (Profile, error) {
	p := Profile{KpBP: zeroCurve(), KpV: zeroCurve(), KiBP: zeroCurve(), KiV: zeroCurve()}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "could not read live tune")
	}
	var doc map[string]json.RawMessage
	err = json.Unmarshal(data, &doc)
	if err != nil {
		return p, errors.Wrap(err, "could not parse live tune")
	}
	err = p.Merge(doc)
	if err != nil {
		return p, err
	}
	return p, p.Validate()
}
