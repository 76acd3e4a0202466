// Package schedule defines the domain model for the personal ITMO class
// schedule and the parser that turns the raw API payload into it.
package schedule

import "time"

// Building is an enumerated campus building reference. The set of codes the
// API returns grows over time, so unrecognized codes map to BuildingUnknown
// instead of failing validation.
type Building int

const (
	BuildingUnknown Building = iota
	BuildingBirzhevaya14A
	BuildingGastello12A
	BuildingKronverksky49A
	BuildingLomonosova9A
	BuildingLomonosova9B
	BuildingLomonosova9E
	BuildingLomonosova9M
	BuildingAlexanderPark4
)

// Buildings lists every member, BuildingUnknown included. Used by the i18n
// tables to verify complete coverage.
var Buildings = []Building{
	BuildingUnknown,
	BuildingBirzhevaya14A,
	BuildingGastello12A,
	BuildingKronverksky49A,
	BuildingLomonosova9A,
	BuildingLomonosova9B,
	BuildingLomonosova9E,
	BuildingLomonosova9M,
	BuildingAlexanderPark4,
}

func buildingFromCode(code int) Building {
	switch code {
	case 1:
		return BuildingBirzhevaya14A
	case 6:
		return BuildingGastello12A
	case 13:
		return BuildingKronverksky49A
	case 23:
		return BuildingLomonosova9A
	case 33:
		return BuildingLomonosova9B
	case 35:
		return BuildingLomonosova9E
	case 37:
		return BuildingLomonosova9M
	case 343:
		return BuildingAlexanderPark4
	default:
		return BuildingUnknown
	}
}

// LessonFormat is the delivery format of a lesson. Closed set: unrecognized
// codes fail validation.
type LessonFormat int

const (
	FormatFaceToFace LessonFormat = 1
	FormatMixed      LessonFormat = 2
	FormatDistance   LessonFormat = 3
)

// LessonFormats lists every member.
var LessonFormats = []LessonFormat{FormatFaceToFace, FormatMixed, FormatDistance}

// LessonType is the kind of class a lesson is. Closed set: unrecognized
// codes fail validation.
type LessonType int

const (
	TypeLecture    LessonType = 1
	TypeLaboratory LessonType = 2
	TypePractical  LessonType = 3
	TypeSport      LessonType = 11
)

// LessonTypes lists every member.
var LessonTypes = []LessonType{TypeLecture, TypeLaboratory, TypePractical, TypeSport}

// Lesson is one scheduled class occurrence. Optional attributes use the
// zero value for "absent". Instances are built once by Parse and never
// mutated afterwards.
type Lesson struct {
	Date      string // calendar day, "2006-01-02"
	PairID    string // stable within one response; becomes the event UID
	Subject   string
	SubjectID int
	Note      string

	TimeStart time.Time
	TimeEnd   time.Time

	TeacherName string
	TeacherID   int

	Room     string
	Building Building

	Format LessonFormat
	Type   LessonType

	Group      string
	FlowTypeID int
	FlowID     int

	ZoomURL      string
	ZoomPassword string
	ZoomInfo     string
}

// Day groups one calendar date's lessons.
type Day struct {
	DayNumber  int
	WeekNumber int
	Date       string
	Note       string
	Type       string
	Lessons    []Lesson

	// Intersections holds schedule-reported index pairs of overlapping
	// lessons. Advisory only; nothing here acts on them.
	Intersections [][]int
}

// Schedule is the parsed response envelope.
type Schedule struct {
	Code    int
	Message string
	Days    []Day
}

// Lessons flattens the schedule into a single ordered slice, preserving day
// order and in-day lesson order.
func (s *Schedule) Lessons() []Lesson {
	var out []Lesson
	for _, d := range s.Days {
		out = append(out, d.Lessons...)
	}
	return out
}
