package ical

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/isu2cal/isu2cal/internal/i18n"
	"github.com/isu2cal/isu2cal/internal/schedule"
)

func TestDescribe(t *testing.T) {
	t.Run("renders present attributes in fixed order", func(t *testing.T) {
		l := schedule.Lesson{
			Note:         "bring a laptop",
			FlowID:       7,
			ZoomURL:      "https://zoom.us/j/123",
			ZoomPassword: "secret",
			Group:        "M3241",
		}

		got := strings.Split(Describe(l, i18n.English), "\n")
		want := []string{
			"Note: bring a laptop",
			"Flow ID: 7",
			"Zoom URL: https://zoom.us/j/123",
			"Zoom Password: secret",
			"Group: M3241",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zoom fields only", func(t *testing.T) {
		l := schedule.Lesson{
			ZoomURL:      "https://zoom.us/j/123",
			ZoomPassword: "secret",
		}

		got := strings.Split(Describe(l, i18n.English), "\n")
		if len(got) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(got), got)
		}
		if !strings.HasPrefix(got[0], "Zoom URL:") {
			t.Errorf("first line should be the Zoom URL, got %q", got[0])
		}
		if !strings.HasPrefix(got[1], "Zoom Password:") {
			t.Errorf("second line should be the Zoom password, got %q", got[1])
		}
	})

	t.Run("zero flow id contributes no line", func(t *testing.T) {
		l := schedule.Lesson{Group: "M3241"}
		if got := Describe(l, i18n.English); got != "Group: M3241" {
			t.Errorf("expected only the group line, got %q", got)
		}
	})

	t.Run("all absent yields empty string", func(t *testing.T) {
		if got := Describe(schedule.Lesson{}, i18n.English); got != "" {
			t.Errorf("expected empty description, got %q", got)
		}
	})

	t.Run("no trailing whitespace", func(t *testing.T) {
		l := schedule.Lesson{Note: "n", Group: "g"}
		got := Describe(l, i18n.English)
		if got != strings.TrimSpace(got) {
			t.Errorf("expected trimmed result, got %q", got)
		}
	})

	t.Run("russian labels are sentence-cased", func(t *testing.T) {
		l := schedule.Lesson{Note: "взять ноутбук", Group: "M3241"}
		got := Describe(l, i18n.Russian)
		if !strings.HasPrefix(got, "Примечание: взять ноутбук") {
			t.Errorf("unexpected russian description %q", got)
		}
		if !strings.Contains(got, "Группа: M3241") {
			t.Errorf("expected group line, got %q", got)
		}
	})
}
