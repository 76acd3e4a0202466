// Package ical maps validated lessons onto iCalendar events and serializes
// the resulting document.
package ical

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/isu2cal/isu2cal/internal/i18n"
	"github.com/isu2cal/isu2cal/internal/schedule"
)

// now stands in for time.Now so tests can pin LAST-MODIFIED.
var now = time.Now

// ErrDuplicateUID means two lessons in one generation run carried the same
// pair identifier. That is a data-integrity defect in the response, so it
// is surfaced instead of silently merging events.
var ErrDuplicateUID = errors.New("duplicate event UID")

// SerializationError wraps a failure to produce wire-format text.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string { return "serialize calendar: " + e.Err.Error() }
func (e *SerializationError) Unwrap() error { return e.Err }

// Calendar accumulates lessons as calendar events for one target language.
type Calendar struct {
	lang i18n.Language
	cal  *ics.Calendar
	uids map[string]struct{}
}

// New returns an empty calendar document. An empty calendar serializes to a
// valid zero-event VCALENDAR.
func New(lang i18n.Language) *Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId("-//isu2cal//ITMO schedule//EN")
	return &Calendar{
		lang: lang,
		cal:  cal,
		uids: make(map[string]struct{}),
	}
}

// Add maps one lesson onto one event.
func (c *Calendar) Add(l schedule.Lesson) error {
	if _, dup := c.uids[l.PairID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateUID, l.PairID)
	}
	c.uids[l.PairID] = struct{}{}

	ev := c.cal.AddEvent(l.PairID)
	ev.SetSummary(c.title(l))
	ev.SetStartAt(l.TimeStart)
	ev.SetEndAt(l.TimeEnd)
	ev.SetStatus(ics.ObjectStatusConfirmed)

	// The organizer "email" is the numeric teacher id. It is a placeholder
	// identifier, not a deliverable address.
	name := l.TeacherName
	if name == "" {
		name = "Unknown"
	}
	ev.SetOrganizer(strconv.Itoa(l.TeacherID), ics.WithCN(name))

	ev.AddProperty(ics.ComponentPropertyCategories, strings.TrimSpace(l.Group))

	if loc, ok := c.location(l); ok {
		ev.SetLocation(loc)
	}
	if l.ZoomURL != "" {
		ev.SetURL(l.ZoomURL)
	}
	if desc := Describe(l, c.lang); desc != "" {
		ev.SetDescription(desc)
	}

	ev.SetModifiedAt(now().In(l.TimeStart.Location()))
	return nil
}

// Serialize renders the document as iCalendar text.
func (c *Calendar) Serialize() (string, error) {
	var b strings.Builder
	if err := c.cal.SerializeTo(&b); err != nil {
		return "", &SerializationError{Err: err}
	}
	return b.String(), nil
}

// title renders "<subject> (<short type label>)". English titles are
// title-cased; other languages keep the subject verbatim.
func (c *Calendar) title(l schedule.Lesson) string {
	_, short := i18n.LessonTypeLabel(c.lang, l.Type)
	s := fmt.Sprintf("%s (%s)", l.Subject, short)
	if c.lang == i18n.English {
		return i18n.Titlecase(s, c.lang)
	}
	return s
}

// location renders "<short room label> <room>; <long building label>".
// Omitted entirely when neither a room nor a recognized building is
// present; an unknown building keeps the room and leaves the building
// segment empty.
func (c *Calendar) location(l schedule.Lesson) (string, bool) {
	if l.Room == "" && l.Building == schedule.BuildingUnknown {
		return "", false
	}
	_, aud := i18n.RoomLabel(c.lang, i18n.RoomAuditorium)
	long, _ := i18n.BuildingLabel(c.lang, l.Building)
	return fmt.Sprintf("%s %s; %s", i18n.Titlecase(aud, c.lang), l.Room, long), true
}

// Generate is the whole pipeline tail: every lesson becomes exactly one
// event, then the document is serialized.
func Generate(lessons []schedule.Lesson, lang i18n.Language) (string, error) {
	cal := New(lang)
	for _, l := range lessons {
		if err := cal.Add(l); err != nil {
			return "", err
		}
	}
	return cal.Serialize()
}
