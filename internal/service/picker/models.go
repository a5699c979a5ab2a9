package picker

import (
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/selection"
)

// TimeRenderModel is what a time-mode picker shows. The list variant carries
// the full catalog with disabled flags; the wheel variant carries only the
// available slots with visual weights.
type TimeRenderModel struct {
	Kind  Kind
	Items []TimeItem
	Empty bool // no slots left for the selected date
}

// TimeItem is one rendered slot row.
type TimeItem struct {
	Time     string  `json:"time"`    // canonical HH:MM
	Display  string  `json:"display"` // 12-hour form
	Disabled bool    `json:"disabled,omitempty"`
	Focused  bool    `json:"focused,omitempty"`
	Selected bool    `json:"selected,omitempty"`
	Centered bool    `json:"centered,omitempty"`
	Opacity  float64 `json:"opacity,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// CalendarRenderModel is what a date-mode picker shows: one month of cells
// plus navigation context.
type CalendarRenderModel struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Header   string        `json:"header"` // "Weekday, D Mon" of the selected date
	Selected string        `json:"selected"`
	Cells    []CalendarDay `json:"cells"`
}

// CalendarDay is one calendar cell.
type CalendarDay struct {
	Day      int    `json:"day"`
	Date     string `json:"date"` // YYYY-MM-DD
	Past     bool   `json:"past,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// RenderCalendar builds the date-mode render model for the session's cursor
// month. Past cells stay rendered but are marked unselectable.
func RenderCalendar(session *selection.Session, now time.Time) CalendarRenderModel {
	cursor := session.Cursor()
	selected := session.SelectedDate()

	model := CalendarRenderModel{
		Year:     cursor.Year,
		Month:    int(cursor.Month),
		Header:   domain.FormatDateHeader(selected),
		Selected: selected.Format(domain.DateFormat),
		Cells:    make([]CalendarDay, 0, cursor.Days()),
	}

	for day := 1; day <= cursor.Days(); day++ {
		date := time.Date(cursor.Year, cursor.Month, day, 0, 0, 0, 0, now.Location())
		model.Cells = append(model.Cells, CalendarDay{
			Day:      day,
			Date:     date.Format(domain.DateFormat),
			Past:     domain.IsPastDate(date, now),
			Today:    domain.IsSameDay(date, now),
			Selected: domain.IsSameDay(date, selected),
		})
	}

	return model
}
