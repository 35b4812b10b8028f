package views

import (
	"time"

	"taskdash-core/tasks"
)

// CalendarCell is one grid cell of a month calendar. Day 0 marks a leading
// placeholder cell used for weekday alignment; real days run 1..last day of
// the month. Tasks holds at most the display cap, Overflow counts the rest.
type CalendarCell struct {
	Day      int          `json:"day"`
	Tasks    []tasks.Task `json:"tasks,omitempty"`
	Overflow int          `json:"overflow,omitempty"`
}

// Calendar is the month projection: a Sunday-start grid of cells.
type Calendar struct {
	Year  int            `json:"year"`
	Month time.Month     `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// MonthCalendar buckets tasks into the days of year/month by their
// deadline's UTC calendar day. Tasks without a deadline, or deadlined in a
// different month, are not part of this projection. displayCap caps how many
// tasks a cell lists (<= 0 means unlimited); the remainder is reported as
// Overflow. Within a cell the input order is preserved.
func MonthCalendar(ts []tasks.Task, year int, month time.Month, displayCap int) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int][]tasks.Task)
	for _, t := range ts {
		if t.Deadline == nil {
			continue
		}
		d := t.Deadline.UTC()
		if d.Year() != year || d.Month() != month {
			continue
		}
		byDay[d.Day()] = append(byDay[d.Day()], t)
	}

	cells := make([]CalendarCell, 0, int(first.Weekday())+lastDay)
	// leading placeholders so day 1 lands on its weekday (Sunday-start grid)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, CalendarCell{})
	}
	for day := 1; day <= lastDay; day++ {
		cell := CalendarCell{Day: day, Tasks: byDay[day]}
		if displayCap > 0 && len(cell.Tasks) > displayCap {
			cell.Overflow = len(cell.Tasks) - displayCap
			cell.Tasks = cell.Tasks[:displayCap]
		}
		cells = append(cells, cell)
	}

	return Calendar{Year: year, Month: month, Cells: cells}
}
