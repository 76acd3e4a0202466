package schedule

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const validLesson = `{
	"pair_id": 515989,
	"subject": "Algorithms",
	"subject_id": 12345,
	"note": null,
	"time_start": "09:00",
	"time_end": "10:30",
	"teacher_name": "Dr. Ivanov",
	"teacher_id": 42,
	"room": "301",
	"bld_id": 23,
	"main_bld_id": 23,
	"format_id": 1,
	"work_type_id": 1,
	"group": "M3241",
	"flow_type_id": 1,
	"flow_id": 7,
	"zoom_url": null,
	"zoom_password": null,
	"zoom_info": null
}`

// wrapDay builds a one-day envelope around the given lesson objects.
func wrapDay(lessons string) string {
	return `{
		"code": 200,
		"data": [{
			"day_number": 4,
			"week_number": 2,
			"date": "2023-09-07",
			"note": null,
			"type": null,
			"lessons": [` + lessons + `],
			"intersections": null
		}],
		"message": null
	}`
}

func TestParse(t *testing.T) {
	t.Run("valid lesson", func(t *testing.T) {
		sched, err := Parse([]byte(wrapDay(validLesson)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lessons := sched.Lessons()
		if len(lessons) != 1 {
			t.Fatalf("expected 1 lesson, got %d", len(lessons))
		}

		l := lessons[0]
		if l.Date != "2023-09-07" {
			t.Errorf("day date should be denormalized onto the lesson, got %q", l.Date)
		}
		if l.PairID != "515989" {
			t.Errorf("expected pair id '515989', got %q", l.PairID)
		}

		wantStart := time.Date(2023, 9, 7, 9, 0, 0, 0, time.FixedZone("", 3*60*60))
		if !l.TimeStart.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, l.TimeStart)
		}
		wantEnd := time.Date(2023, 9, 7, 10, 30, 0, 0, time.FixedZone("", 3*60*60))
		if !l.TimeEnd.Equal(wantEnd) {
			t.Errorf("expected end %v, got %v", wantEnd, l.TimeEnd)
		}

		if l.Building != BuildingLomonosova9A {
			t.Errorf("expected building code 23 to map to Lomonosova 9A, got %d", l.Building)
		}
		if l.Type != TypeLecture {
			t.Errorf("expected lecture, got %d", l.Type)
		}
		if l.Format != FormatFaceToFace {
			t.Errorf("expected face-to-face, got %d", l.Format)
		}
		if l.Note != "" || l.ZoomURL != "" {
			t.Error("null optional fields should parse as empty strings")
		}
	})

	t.Run("textual pair id", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"pair_id": 515989`, `"pair_id": "515989-extra"`))
		sched, err := Parse([]byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := sched.Lessons()[0].PairID; got != "515989-extra" {
			t.Errorf("expected pair id '515989-extra', got %q", got)
		}
	})

	t.Run("null pair id fails", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"pair_id": 515989`, `"pair_id": null`))
		_, err := Parse([]byte(payload))

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if ve.Field != "pair_id" {
			t.Errorf("expected error to name field 'pair_id', got %q", ve.Field)
		}
		if ve.Reason != "missing" {
			t.Errorf("expected reason 'missing', got %q", ve.Reason)
		}
	})

	t.Run("textual enum codes", func(t *testing.T) {
		payload := wrapDay(replace(replace(validLesson,
			`"format_id": 1`, `"format_id": "Очный"`),
			`"work_type_id": 1`, `"work_type_id": "Laboratory classes"`))
		sched, err := Parse([]byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l := sched.Lessons()[0]
		if l.Format != FormatFaceToFace {
			t.Errorf("expected face-to-face, got %d", l.Format)
		}
		if l.Type != TypeLaboratory {
			t.Errorf("expected laboratory, got %d", l.Type)
		}
	})

	t.Run("null enum codes fail as missing", func(t *testing.T) {
		for _, field := range []string{"format_id", "work_type_id"} {
			payload := wrapDay(replace(validLesson, `"`+field+`": 1`, `"`+field+`": null`))
			_, err := Parse([]byte(payload))

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("%s: expected *ValidationError, got %v", field, err)
			}
			if ve.Field != field {
				t.Errorf("expected error to name field %q, got %q", field, ve.Field)
			}
			if ve.Reason != "missing" {
				t.Errorf("%s: expected reason 'missing', got %q", field, ve.Reason)
			}
		}
	})

	t.Run("missing mandatory field fails", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"subject": "Algorithms"`, `"subject": null`))
		_, err := Parse([]byte(payload))

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if ve.Field != "subject" {
			t.Errorf("expected error to name field 'subject', got %q", ve.Field)
		}
		if ve.Day != 0 || ve.Lesson != 0 {
			t.Errorf("expected record coordinates (0, 0), got (%d, %d)", ve.Day, ve.Lesson)
		}
	})

	t.Run("malformed time fails", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"time_start": "09:00"`, `"time_start": "25:99"`))
		_, err := Parse([]byte(payload))

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if ve.Field != "time_start" {
			t.Errorf("expected error to name field 'time_start', got %q", ve.Field)
		}
	})

	t.Run("end before start fails", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"time_end": "10:30"`, `"time_end": "08:00"`))
		_, err := Parse([]byte(payload))

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
	})

	t.Run("unknown building is tolerated", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"bld_id": 23`, `"bld_id": 999`))
		sched, err := Parse([]byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := sched.Lessons()[0].Building; got != BuildingUnknown {
			t.Errorf("expected unknown building, got %d", got)
		}
	})

	t.Run("absent building is tolerated", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"bld_id": 23`, `"bld_id": null`))
		sched, err := Parse([]byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := sched.Lessons()[0].Building; got != BuildingUnknown {
			t.Errorf("expected unknown building, got %d", got)
		}
	})

	t.Run("unknown lesson type fails", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"work_type_id": 1`, `"work_type_id": 99`))
		_, err := Parse([]byte(payload))

		var ue *UnknownEnumError
		if !errors.As(err, &ue) {
			t.Fatalf("expected *UnknownEnumError, got %v", err)
		}
		if ue.Kind != "work_type" || ue.Code != "99" {
			t.Errorf("expected work_type/99, got %s/%s", ue.Kind, ue.Code)
		}
	})

	t.Run("unknown lesson format fails", func(t *testing.T) {
		payload := wrapDay(replace(validLesson, `"format_id": 1`, `"format_id": 7`))
		_, err := Parse([]byte(payload))

		var ue *UnknownEnumError
		if !errors.As(err, &ue) {
			t.Fatalf("expected *UnknownEnumError, got %v", err)
		}
	})

	t.Run("empty data yields empty schedule", func(t *testing.T) {
		sched, err := Parse([]byte(`{"code": 200, "data": [], "message": null}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sched.Days) != 0 {
			t.Errorf("expected 0 days, got %d", len(sched.Days))
		}
		if got := sched.Lessons(); len(got) != 0 {
			t.Errorf("expected 0 lessons, got %d", len(got))
		}
	})

	t.Run("day without a lessons key fails", func(t *testing.T) {
		for _, lessons := range []string{`"lessons": null,`, ``} {
			payload := `{
				"code": 200,
				"data": [{
					"day_number": 4, "week_number": 2, "date": "2023-09-07",
					"note": null, "type": null, ` + lessons + `
					"intersections": null
				}],
				"message": null
			}`
			_, err := Parse([]byte(payload))

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Field != "lessons" || ve.Lesson != -1 {
				t.Errorf("expected day-level error on 'lessons', got field %q lesson %d", ve.Field, ve.Lesson)
			}
		}
	})

	t.Run("day with an empty lessons array is valid", func(t *testing.T) {
		payload := wrapDay("")
		sched, err := Parse([]byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := sched.Lessons(); len(got) != 0 {
			t.Errorf("expected 0 lessons, got %d", len(got))
		}
	})

	t.Run("missing envelope fields fail", func(t *testing.T) {
		if _, err := Parse([]byte(`{"data": []}`)); err == nil {
			t.Error("expected error for missing code")
		}
		if _, err := Parse([]byte(`{"code": 200}`)); err == nil {
			t.Error("expected error for missing data")
		}
	})

	t.Run("flattening preserves order across days", func(t *testing.T) {
		second := replace(replace(validLesson,
			`"pair_id": 515989`, `"pair_id": 515990`),
			`"time_start": "09:00"`, `"time_start": "11:40"`)
		second = replace(second, `"time_end": "10:30"`, `"time_end": "13:10"`)

		payload := `{
			"code": 200,
			"data": [
				{"day_number": 4, "week_number": 2, "date": "2023-09-07",
				 "note": null, "type": null, "intersections": null,
				 "lessons": [` + validLesson + `, ` + second + `]},
				{"day_number": 5, "week_number": 2, "date": "2023-09-08",
				 "note": "shortened day", "type": null, "intersections": [[0, 1]],
				 "lessons": [` + replace(validLesson, `"pair_id": 515989`, `"pair_id": 515991`) + `]}
			],
			"message": null
		}`

		sched, err := Parse([]byte(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lessons := sched.Lessons()
		if len(lessons) != 3 {
			t.Fatalf("expected 3 lessons, got %d", len(lessons))
		}
		wantIDs := []string{"515989", "515990", "515991"}
		for i, want := range wantIDs {
			if lessons[i].PairID != want {
				t.Errorf("lesson %d: expected pair id %s, got %s", i, want, lessons[i].PairID)
			}
		}
		if lessons[2].Date != "2023-09-08" {
			t.Errorf("expected second day's date on its lesson, got %q", lessons[2].Date)
		}
	})

	t.Run("one bad lesson fails the whole parse", func(t *testing.T) {
		bad := replace(validLesson, `"group": "M3241"`, `"group": null`)
		payload := wrapDay(validLesson + ", " + replace(bad, `"pair_id": 515989`, `"pair_id": 515990`))
		if _, err := Parse([]byte(payload)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestWeekRange(t *testing.T) {
	wednesday := time.Date(2023, 9, 6, 15, 30, 0, 0, time.UTC)
	start, end := WeekRange(wednesday)

	if start.Weekday() != time.Monday || start.Day() != 4 {
		t.Errorf("expected Monday Sep 4, got %v", start)
	}
	if end.Weekday() != time.Sunday || end.Day() != 10 {
		t.Errorf("expected Sunday Sep 10, got %v", end)
	}

	sunday := time.Date(2023, 9, 10, 0, 0, 0, 0, time.UTC)
	start, _ = WeekRange(sunday)
	if start.Day() != 4 {
		t.Errorf("Sunday should still belong to the week of Sep 4, got %v", start)
	}
}

func replace(s, old, new string) string {
	return strings.ReplaceAll(s, old, new)
}
