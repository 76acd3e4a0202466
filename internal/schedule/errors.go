package schedule

import "fmt"

// ValidationError reports a malformed or incomplete input record. Day and
// Lesson are zero-based indices into the payload; Lesson is -1 for
// day-level problems.
type ValidationError struct {
	Day    int
	Lesson int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Lesson < 0 {
		return fmt.Sprintf("invalid schedule: day %d: field %q: %s", e.Day, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid schedule: day %d lesson %d: field %q: %s", e.Day, e.Lesson, e.Field, e.Reason)
}

// UnknownEnumError reports a lesson-type or lesson-format code outside the
// known closed set.
type UnknownEnumError struct {
	Day    int
	Lesson int
	Kind   string
	Code   string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("invalid schedule: day %d lesson %d: unknown %s code %q", e.Day, e.Lesson, e.Kind, e.Code)
}
