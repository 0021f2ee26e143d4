package ballast

import (
	"os"
	"strings"
)

// Snapshot is the environment view for a single build. It starts from a seed
// (the process environment, or a map injected with WithVariables) and is
// mutated only by sequential application of declared environment files.
//
// Seed keys are sticky: an environment file never overrides a variable that
// was already set when the build started, matching dotenv convention. Among
// files, the last declared file wins for overlapping keys.
//
// The engine never writes to the process environment itself.
type Snapshot struct {
	values map[string]string
	seeded map[string]struct{}
}

func newSnapshot(seed map[string]string) *Snapshot {
	if seed == nil {
		seed = environ()
	}
	s := &Snapshot{
		values: make(map[string]string, len(seed)),
		seeded: make(map[string]struct{}, len(seed)),
	}
	for k, v := range seed {
		s.values[k] = v
		s.seeded[k] = struct{}{}
	}
	return s
}

// apply folds one environment file's pairs into the snapshot.
func (s *Snapshot) apply(vars map[string]string) {
	for k, v := range vars {
		if _, preset := s.seeded[k]; preset {
			continue
		}
		s.values[k] = v
	}
}

// Lookup returns the value of the named variable.
func (s *Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Values returns a copy of the snapshot's variables.
func (s *Snapshot) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Overrides returns a copy of the seed-origin variables only: the ones that
// were already set when the build started. These are the operator's explicit
// overrides and outrank every file-sourced value during binding.
func (s *Snapshot) Overrides() map[string]string {
	out := make(map[string]string, len(s.seeded))
	for k := range s.seeded {
		out[k] = s.values[k]
	}
	return out
}

// Len returns the number of variables in the snapshot.
func (s *Snapshot) Len() int { return len(s.values) }

func environ() map[string]string {
	env := os.Environ()
	out := make(map[string]string, len(env))
	for _, kv := range env {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = parts[1]
	}
	return out
}
