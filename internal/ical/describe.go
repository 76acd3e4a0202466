package ical

import (
	"strconv"
	"strings"

	"github.com/isu2cal/isu2cal/internal/i18n"
	"github.com/isu2cal/isu2cal/internal/schedule"
)

// Describe assembles the human-readable note body of a lesson: one labeled
// line per present attribute, in fixed order (note, flow ID, Zoom URL,
// Zoom password, group). Absent attributes contribute no line; an
// all-absent lesson yields "" and callers omit the DESCRIPTION field.
func Describe(l schedule.Lesson, lang i18n.Language) string {
	var b strings.Builder

	line := func(kind i18n.NoteKind, value string) {
		if value == "" {
			return
		}
		b.WriteString(i18n.Titlecase(i18n.NoteLabel(lang, kind), lang))
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line(i18n.NoteLesson, l.Note)
	if l.FlowID != 0 {
		line(i18n.NoteFlowID, strconv.Itoa(l.FlowID))
	}
	line(i18n.NoteZoomURL, l.ZoomURL)
	line(i18n.NoteZoomPassword, l.ZoomPassword)
	line(i18n.NoteGroup, l.Group)

	return strings.TrimSpace(b.String())
}
