package model

import "time"

// MaxDayTasks caps how many task texts a calendar cell shows before the
// overflow count takes over.
const MaxDayTasks = 2

type CalendarDay struct {
	Day     int // 0 marks a leading blank cell
	IsToday bool
	Tasks   []Task
	// Overflow counts tasks beyond the MaxDayTasks shown in Tasks.
	Overflow int
}

type CalendarMonth struct {
	Year  int
	Month time.Month
	// Cells is a Sunday-first flat grid: leading blanks, then days 1..N.
	Cells []CalendarDay
}

// MonthGrid buckets task deadlines into the local calendar days of one
// month. Completed tasks still bucket; rendering decides how to style them.
func MonthGrid(year int, month time.Month, tasks []Task, today time.Time) CalendarMonth {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int][]Task)
	for _, t := range tasks {
		if t.Deadline == nil {
			continue
		}
		due := t.Deadline.In(loc)
		if due.Year() != year || due.Month() != month {
			continue
		}
		byDay[due.Day()] = append(byDay[due.Day()], t)
	}

	cells := make([]CalendarDay, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := CalendarDay{
			Day: day,
			IsToday: today.Year() == year && today.Month() == month &&
				today.Day() == day,
		}
		dayTasks := byDay[day]
		if len(dayTasks) > MaxDayTasks {
			cell.Tasks = dayTasks[:MaxDayTasks]
			cell.Overflow = len(dayTasks) - MaxDayTasks
		} else {
			cell.Tasks = dayTasks
		}
		cells = append(cells, cell)
	}
	return CalendarMonth{Year: year, Month: month, Cells: cells}
}

// Weeks reshapes the flat cell grid into Sunday-first rows of seven,
// padding the tail with blanks.
func (m CalendarMonth) Weeks() [][]CalendarDay {
	out := make([][]CalendarDay, 0, (len(m.Cells)+6)/7)
	for start := 0; start < len(m.Cells); start += 7 {
		end := start + 7
		if end > len(m.Cells) {
			end = len(m.Cells)
		}
		week := make([]CalendarDay, 7)
		copy(week, m.Cells[start:end])
		out = append(out, week)
	}
	return out
}
