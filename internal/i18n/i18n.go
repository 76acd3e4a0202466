// Package i18n holds the static display-string tables for the schedule
// enumerations and the language-aware title-casing rules.
//
// The tables are defined exhaustively per supported language and verified
// at init time; a missing language/key pair is a programming error, so the
// package panics rather than ever serving blank text.
package i18n

import (
	"fmt"

	"github.com/isu2cal/isu2cal/internal/schedule"
)

// Language is a supported display language code.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// Languages lists every supported language.
var Languages = []Language{English, Russian}

// ParseLanguage validates a language code from user input.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case English:
		return English, nil
	case Russian:
		return Russian, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}

// pair is a long display form and its short counterpart.
type pair struct {
	long  string
	short string
}

// NoteKind identifies one of the labeled lines a lesson description can
// carry.
type NoteKind int

const (
	NoteLesson NoteKind = iota
	NoteFlowID
	NoteZoomURL
	NoteZoomPassword
	NoteGroup
)

// NoteKinds lists every member, in description line order.
var NoteKinds = []NoteKind{NoteLesson, NoteFlowID, NoteZoomURL, NoteZoomPassword, NoteGroup}

// RoomKind distinguishes the room-label vocabularies.
type RoomKind int

const (
	RoomAuditorium RoomKind = iota
	RoomCabinet
)

var roomKinds = []RoomKind{RoomAuditorium, RoomCabinet}

var lessonTypes = map[Language]map[schedule.LessonType]pair{
	English: {
		schedule.TypeLecture:    {"lecture", "lecture"},
		schedule.TypeLaboratory: {"laboratory class", "lab class"},
		schedule.TypePractical:  {"practical class", "practice"},
		schedule.TypeSport:      {"sport", "sport"},
	},
	Russian: {
		schedule.TypeLecture:    {"лекция", "лекция"},
		schedule.TypeLaboratory: {"лабораторное занятие", "лабораторная"},
		schedule.TypePractical:  {"практическое занятие", "практика"},
		schedule.TypeSport:      {"занятие спортом", "спорт"},
	},
}

var lessonFormats = map[Language]map[schedule.LessonFormat]pair{
	English: {
		schedule.FormatFaceToFace: {"face-to-face", "face-to-face"},
		schedule.FormatMixed:      {"face-to-face + distant", "mixed"},
		schedule.FormatDistance:   {"distance", "distant"},
	},
	Russian: {
		schedule.FormatFaceToFace: {"очный", "очно"},
		schedule.FormatMixed:      {"очно-дистанционный", "очно-дистант"},
		schedule.FormatDistance:   {"дистанционный", "дистант"},
	},
}

// The unknown building deliberately renders as empty strings: locations
// with an unrecognized building keep the room segment and drop the
// building one.
var buildings = map[Language]map[schedule.Building]pair{
	English: {
		schedule.BuildingBirzhevaya14A:  {"Birzhevaya liniya, d. 14, lit. A", "Birzhevaya"},
		schedule.BuildingGastello12A:    {"ul. Gastello, d. 12, lit. A", "Gastello"},
		schedule.BuildingKronverksky49A: {"Kronverksky pr., d. 49, lit. A", "Kronverksky"},
		schedule.BuildingLomonosova9A:   {"ul. Lomonosova, d. 9, lit. A", "Lomonosova"},
		schedule.BuildingLomonosova9B:   {"ul. Lomonosova, d. 9, lit. B", "Lomonosova"},
		schedule.BuildingLomonosova9E:   {"ul. Lomonosova, d. 9, lit. E", "Lomonosova"},
		schedule.BuildingLomonosova9M:   {"ul. Lomonosova, d. 9, lit. M", "Lomonosova"},
		schedule.BuildingAlexanderPark4: {"Aleksandrovsky park, 4", "Aleksandrovsky park"},
		schedule.BuildingUnknown:        {"", ""},
	},
	Russian: {
		schedule.BuildingBirzhevaya14A:  {"Биржевая линия, д. 14, лит. А", "Биржевая"},
		schedule.BuildingGastello12A:    {"ул. Гастелло, д. 12, лит. А", "Гастелло"},
		schedule.BuildingKronverksky49A: {"Кронверкский пр., д. 49, лит. А", "Кронверкский"},
		schedule.BuildingLomonosova9A:   {"ул. Ломоносова, д. 9, лит. А", "Ломоносова"},
		schedule.BuildingLomonosova9B:   {"ул. Ломоносова, д. 9, лит. Б", "Ломоносова"},
		schedule.BuildingLomonosova9E:   {"ул. Ломоносова, д. 9, лит. Е", "Ломоносова"},
		schedule.BuildingLomonosova9M:   {"ул. Ломоносова, д. 9, лит. М", "Ломоносова"},
		schedule.BuildingAlexanderPark4: {"Александровский парк, 4", "Александровский парк"},
		schedule.BuildingUnknown:        {"", ""},
	},
}

var roomLabels = map[Language]map[RoomKind]pair{
	English: {
		RoomAuditorium: {"auditorium", "aud."},
		RoomCabinet:    {"room", "room"},
	},
	Russian: {
		RoomAuditorium: {"аудитория", "ауд."},
		RoomCabinet:    {"кабинет", "каб."},
	},
}

var noteLabels = map[Language]map[NoteKind]string{
	English: {
		NoteLesson:       "note",
		NoteFlowID:       "flow ID",
		NoteZoomURL:      "Zoom URL",
		NoteZoomPassword: "Zoom password",
		NoteGroup:        "group",
	},
	Russian: {
		NoteLesson:       "примечание",
		NoteFlowID:       "ID потока",
		NoteZoomURL:      "ссылка Zoom",
		NoteZoomPassword: "пароль Zoom",
		NoteGroup:        "группа",
	},
}

// LessonTypeLabel returns the long and short display forms of a lesson type.
func LessonTypeLabel(lang Language, t schedule.LessonType) (long, short string) {
	p := lessonTypes[lang][t]
	return p.long, p.short
}

// FormatLabel returns the long and short display forms of a lesson format.
func FormatLabel(lang Language, f schedule.LessonFormat) (long, short string) {
	p := lessonFormats[lang][f]
	return p.long, p.short
}

// BuildingLabel returns the long and short display forms of a building.
// The unknown building yields empty strings.
func BuildingLabel(lang Language, b schedule.Building) (long, short string) {
	p := buildings[lang][b]
	return p.long, p.short
}

// RoomLabel returns the long and short room-label forms.
func RoomLabel(lang Language, k RoomKind) (long, short string) {
	p := roomLabels[lang][k]
	return p.long, p.short
}

// NoteLabel returns the label for one description line kind.
func NoteLabel(lang Language, k NoteKind) string {
	return noteLabels[lang][k]
}

func init() {
	for _, lang := range Languages {
		for _, t := range schedule.LessonTypes {
			if _, ok := lessonTypes[lang][t]; !ok {
				panic(fmt.Sprintf("i18n: no %s translation for lesson type %d", lang, t))
			}
		}
		for _, f := range schedule.LessonFormats {
			if _, ok := lessonFormats[lang][f]; !ok {
				panic(fmt.Sprintf("i18n: no %s translation for lesson format %d", lang, f))
			}
		}
		for _, b := range schedule.Buildings {
			if _, ok := buildings[lang][b]; !ok {
				panic(fmt.Sprintf("i18n: no %s translation for building %d", lang, b))
			}
		}
		for _, k := range roomKinds {
			if _, ok := roomLabels[lang][k]; !ok {
				panic(fmt.Sprintf("i18n: no %s translation for room kind %d", lang, k))
			}
		}
		for _, k := range NoteKinds {
			if _, ok := noteLabels[lang][k]; !ok {
				panic(fmt.Sprintf("i18n: no %s translation for note kind %d", lang, k))
			}
		}
	}
}
