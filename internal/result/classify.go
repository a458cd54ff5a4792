package result

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultErrorMarker prefixes the output of a crashed z3 run.
const DefaultErrorMarker = "z3: "

var timedPattern = regexp.MustCompile(`^\(([\w\s]+), (\d+)\)$`)

// Classifier turns raw result text into a Result.
type Classifier struct {
	ErrorMarker string
}

var defaultClassifier = Classifier{ErrorMarker: DefaultErrorMarker}

// Classify parses raw with the default error marker.
func Classify(raw string) Result {
	return defaultClassifier.Classify(raw)
}

// Classify never fails: text it does not recognise is Unknown.
func (c Classifier) Classify(raw string) Result {
	text := strings.TrimRight(raw, "\r\n")

	var (
		elapsed int64
		timed   bool
	)
	if m := timedPattern.FindStringSubmatch(text); m != nil {
		text = m[1]
		if n, err := strconv.ParseInt(m[2], 10, 64); err == nil {
			elapsed, timed = n, true
		}
	}

	marker := c.ErrorMarker
	if marker == "" {
		marker = DefaultErrorMarker
	}

	switch {
	case strings.Contains(text, "Sat"):
		return Result{Kind: Sat, Time: elapsed, Timed: timed}
	case strings.Contains(text, "Unsat"):
		return Result{Kind: Unsat, Time: elapsed, Timed: timed}
	case strings.Contains(text, "Time limit"):
		return Untimed(TimeLimit)
	case strings.Contains(text, marker):
		return Untimed(SolverError)
	}
	return Untimed(Unknown)
}

// Format renders r in the raw form Classify accepts. Missing has no raw form
// and formats as the empty string.
func Format(r Result) string {
	var label string
	switch r.Kind {
	case Sat:
		label = "Sat"
	case Unsat:
		label = "Unsat"
	case TimeLimit:
		return "Time limit exceeded"
	case SolverError:
		return DefaultErrorMarker + "solver error"
	case Missing:
		return ""
	default:
		return "Unknown"
	}
	if r.Timed {
		return "(" + label + ", " + strconv.FormatInt(r.Time, 10) + ")"
	}
	return label
}
