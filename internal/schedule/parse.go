package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The API reports wall-clock times without an offset; the institution lives
// in a fixed UTC+3 zone, so instants are built against it.
const dateTimeLayout = "2006-01-02T15:04-0700"

// rawSchedule mirrors the wire shape of the personal schedule endpoint.
// Optional fields are pointers so absence and null are distinguishable from
// zero values during validation.
type rawSchedule struct {
	Code    *int      `json:"code"`
	Data    *[]rawDay `json:"data"`
	Message *string   `json:"message"`
}

type rawDay struct {
	DayNumber     *int        `json:"day_number"`
	WeekNumber    *int        `json:"week_number"`
	Date          *string     `json:"date"`
	Note          *string     `json:"note"`
	Type          *string     `json:"type"`
	Lessons       []rawLesson `json:"lessons"`
	Intersections [][]int     `json:"intersections"`
}

type rawLesson struct {
	PairID       json.RawMessage `json:"pair_id"`
	Subject      *string         `json:"subject"`
	SubjectID    *int            `json:"subject_id"`
	Note         *string         `json:"note"`
	TimeStart    *string         `json:"time_start"`
	TimeEnd      *string         `json:"time_end"`
	TeacherName  *string         `json:"teacher_name"`
	TeacherID    *int            `json:"teacher_id"`
	Room         *string         `json:"room"`
	BldID        *int            `json:"bld_id"`
	MainBldID    *int            `json:"main_bld_id"`
	FormatID     json.RawMessage `json:"format_id"`
	WorkTypeID   json.RawMessage `json:"work_type_id"`
	Group        *string         `json:"group"`
	FlowTypeID   *int            `json:"flow_type_id"`
	FlowID       *int            `json:"flow_id"`
	ZoomURL      *string         `json:"zoom_url"`
	ZoomPassword *string         `json:"zoom_password"`
	ZoomInfo     *string         `json:"zoom_info"`
}

// Parse decodes and validates a personal schedule payload. The API reports
// the date once per day and only wall-clock times per lesson, so the day's
// date is denormalized onto every lesson before validation. A single bad
// record fails the whole parse; partial schedules are never produced.
func Parse(payload []byte) (*Schedule, error) {
	var raw rawSchedule
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode schedule payload: %w", err)
	}

	if raw.Code == nil {
		return nil, &ValidationError{Day: -1, Lesson: -1, Field: "code", Reason: "missing"}
	}
	if raw.Data == nil {
		return nil, &ValidationError{Day: -1, Lesson: -1, Field: "data", Reason: "missing"}
	}

	sched := &Schedule{Code: *raw.Code}
	if raw.Message != nil {
		sched.Message = *raw.Message
	}

	for di, rd := range *raw.Data {
		day, err := parseDay(di, rd)
		if err != nil {
			return nil, err
		}
		sched.Days = append(sched.Days, day)
	}

	return sched, nil
}

func parseDay(di int, rd rawDay) (Day, error) {
	if rd.Date == nil || *rd.Date == "" {
		return Day{}, &ValidationError{Day: di, Lesson: -1, Field: "date", Reason: "missing"}
	}
	if rd.DayNumber == nil {
		return Day{}, &ValidationError{Day: di, Lesson: -1, Field: "day_number", Reason: "missing"}
	}
	if rd.WeekNumber == nil {
		return Day{}, &ValidationError{Day: di, Lesson: -1, Field: "week_number", Reason: "missing"}
	}
	// A day with no classes is an empty array; a missing or null lessons
	// key is a malformed record.
	if rd.Lessons == nil {
		return Day{}, &ValidationError{Day: di, Lesson: -1, Field: "lessons", Reason: "missing"}
	}

	day := Day{
		DayNumber:     *rd.DayNumber,
		WeekNumber:    *rd.WeekNumber,
		Date:          *rd.Date,
		Note:          strValue(rd.Note),
		Type:          strValue(rd.Type),
		Intersections: rd.Intersections,
	}

	for li, rl := range rd.Lessons {
		lesson, err := parseLesson(di, li, day.Date, rl)
		if err != nil {
			return Day{}, err
		}
		day.Lessons = append(day.Lessons, lesson)
	}

	return day, nil
}

func parseLesson(di, li int, date string, rl rawLesson) (Lesson, error) {
	fail := func(field, reason string) (Lesson, error) {
		return Lesson{}, &ValidationError{Day: di, Lesson: li, Field: field, Reason: reason}
	}

	pairID, err := decodePairID(rl.PairID)
	if err != nil {
		return fail("pair_id", err.Error())
	}
	if rl.Subject == nil || *rl.Subject == "" {
		return fail("subject", "missing")
	}
	if rl.SubjectID == nil {
		return fail("subject_id", "missing")
	}
	if rl.TimeStart == nil {
		return fail("time_start", "missing")
	}
	if rl.TimeEnd == nil {
		return fail("time_end", "missing")
	}
	if rl.Group == nil || *rl.Group == "" {
		return fail("group", "missing")
	}
	if rl.FlowTypeID == nil {
		return fail("flow_type_id", "missing")
	}
	if rl.FlowID == nil {
		return fail("flow_id", "missing")
	}

	start, err := combineDateTime(date, *rl.TimeStart)
	if err != nil {
		return fail("time_start", err.Error())
	}
	end, err := combineDateTime(date, *rl.TimeEnd)
	if err != nil {
		return fail("time_end", err.Error())
	}
	if end.Before(start) {
		return fail("time_end", fmt.Sprintf("ends %s before it starts %s", *rl.TimeEnd, *rl.TimeStart))
	}

	format, err := decodeFormat(rl.FormatID)
	if err != nil {
		return Lesson{}, placeEnumErr(di, li, "format_id", err)
	}
	typ, err := decodeType(rl.WorkTypeID)
	if err != nil {
		return Lesson{}, placeEnumErr(di, li, "work_type_id", err)
	}

	lesson := Lesson{
		Date:         date,
		PairID:       pairID,
		Subject:      *rl.Subject,
		SubjectID:    *rl.SubjectID,
		Note:         strValue(rl.Note),
		TimeStart:    start,
		TimeEnd:      end,
		TeacherName:  strValue(rl.TeacherName),
		Room:         strValue(rl.Room),
		Format:       format,
		Type:         typ,
		Group:        *rl.Group,
		FlowTypeID:   *rl.FlowTypeID,
		FlowID:       *rl.FlowID,
		ZoomURL:      strValue(rl.ZoomURL),
		ZoomPassword: strValue(rl.ZoomPassword),
		ZoomInfo:     strValue(rl.ZoomInfo),
	}
	if rl.TeacherID != nil {
		lesson.TeacherID = *rl.TeacherID
	}
	if rl.BldID != nil {
		lesson.Building = buildingFromCode(*rl.BldID)
	}

	return lesson, nil
}

// combineDateTime builds a timezone-aware instant from the separately
// reported calendar date ("2006-01-02") and wall-clock time ("15:04"),
// pinned to the fixed +03:00 offset. Any malformed combination is an error;
// there is no fallback.
func combineDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse(dateTimeLayout, date+"T"+clock+"+0300")
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date/time %q %q", date, clock)
	}
	return t, nil
}

// isNull reports whether a raw field is absent or an explicit JSON null.
// Unmarshaling null into a non-pointer target is a no-op, so the token has
// to be caught before decoding or a null would pass as a zero value.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func decodePairID(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", fmt.Errorf("missing")
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s, nil
	}
	return "", fmt.Errorf("neither numeric nor textual")
}

// Enumeration codes arrive as numbers, but older API revisions reported the
// display names instead, so both are accepted.
func decodeEnumCode(raw json.RawMessage) (int, string, error) {
	if isNull(raw) {
		return 0, "", fmt.Errorf("missing")
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return 0, strings.TrimSpace(s), nil
	}
	return 0, "", fmt.Errorf("neither numeric nor textual")
}

func decodeFormat(raw json.RawMessage) (LessonFormat, error) {
	n, s, err := decodeEnumCode(raw)
	if err != nil {
		return 0, err
	}
	if s != "" {
		switch s {
		case "Очный":
			return FormatFaceToFace, nil
		case "Очно - дистанционный":
			return FormatMixed, nil
		case "Дистанционный":
			return FormatDistance, nil
		default:
			return 0, &UnknownEnumError{Kind: "format", Code: s}
		}
	}
	switch f := LessonFormat(n); f {
	case FormatFaceToFace, FormatMixed, FormatDistance:
		return f, nil
	default:
		return 0, &UnknownEnumError{Kind: "format", Code: strconv.Itoa(n)}
	}
}

func decodeType(raw json.RawMessage) (LessonType, error) {
	n, s, err := decodeEnumCode(raw)
	if err != nil {
		return 0, err
	}
	if s != "" {
		switch s {
		case "Лекции", "Lectures":
			return TypeLecture, nil
		case "Лабораторные занятия", "Laboratory classes":
			return TypeLaboratory, nil
		case "Практические занятия", "Practical classes":
			return TypePractical, nil
		case "Занятия спортом", "Sport":
			return TypeSport, nil
		default:
			return 0, &UnknownEnumError{Kind: "work_type", Code: s}
		}
	}
	switch t := LessonType(n); t {
	case TypeLecture, TypeLaboratory, TypePractical, TypeSport:
		return t, nil
	default:
		return 0, &UnknownEnumError{Kind: "work_type", Code: strconv.Itoa(n)}
	}
}

// placeEnumErr pins record coordinates onto decode failures. Unknown-code
// errors keep their own type so callers can tell closed-set violations from
// plain malformed input.
func placeEnumErr(di, li int, field string, err error) error {
	var ue *UnknownEnumError
	if errors.As(err, &ue) {
		ue.Day, ue.Lesson = di, li
		return ue
	}
	return &ValidationError{Day: di, Lesson: li, Field: field, Reason: err.Error()}
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
