package result

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Kind is the outcome class of one solver on one query.
type Kind int

const (
	Unknown Kind = iota
	Sat
	Unsat
	TimeLimit
	SolverError
	Missing
)

var kindNames = [...]string{
	Unknown:     "unknown",
	Sat:         "sat",
	Unsat:       "unsat",
	TimeLimit:   "timelimit",
	SolverError: "error",
	Missing:     "missing",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return errors.Newf("unknown result kind %q", text)
}

// Result is the canonical answer of one solver on one query. Time is only
// meaningful when Timed is set; its unit is whatever the producing tool used.
type Result struct {
	Kind  Kind
	Time  int64
	Timed bool
}

// Missing returns the value used for a solver absent from a query.
func Missing() Result {
	return Result{Kind: Missing}
}

func Untimed(k Kind) Result {
	return Result{Kind: k}
}

func WithTime(k Kind, t int64) Result {
	return Result{Kind: k, Time: t, Timed: true}
}

// Equal reports structural equality over kind and elapsed time.
func Equal(a, b Result) bool {
	return a == b
}

// Matches reports whether candidate reproduces the reference answer. A
// missing reference has nothing to reproduce.
func Matches(candidate, reference Result) bool {
	return reference.Kind != Missing && Equal(candidate, reference)
}

// Label is the short cell text used by the text renderers.
func (r Result) Label() string {
	var s string
	switch r.Kind {
	case Sat:
		s = "sat"
	case Unsat:
		s = "unsat"
	case TimeLimit:
		s = "TL"
	case SolverError:
		s = "error"
	case Missing:
		return "-"
	default:
		return "?"
	}
	if r.Timed {
		s += fmt.Sprintf("(%d)", r.Time)
	}
	return s
}

func (r Result) String() string {
	return r.Label()
}
