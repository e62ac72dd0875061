package model

// chartPalette is reused cyclically; a subject's color depends only on its
// position in the subjects list.
var chartPalette = []string{
	"#10B981", "#3B82F6", "#F97316", "#8B5CF6", "#EC4899", "#F59E0B", "#14B8A6",
}

func PaletteColor(position int) string {
	if position < 0 {
		position = 0
	}
	return chartPalette[position%len(chartPalette)]
}

type ProgressSlice struct {
	SubjectID string
	Name      string
	Total     int
	Completed int
	// StartPct/EndPct delimit the slice on a 0..100 ring; slice width is
	// proportional to Total, not to completion.
	StartPct float64
	EndPct   float64
	Color    string
}

func (s ProgressSlice) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// ProgressSlices computes the chart segments for the home dashboard.
// Subjects without tasks are skipped; segment order follows subject order.
func ProgressSlices(subjects []Subject, tasks []Task) []ProgressSlice {
	counts := make(map[string]*ProgressSlice, len(subjects))
	ordered := make([]*ProgressSlice, 0, len(subjects))
	for i, s := range subjects {
		slice := &ProgressSlice{SubjectID: s.ID, Name: s.Name, Color: PaletteColor(i)}
		counts[s.ID] = slice
		ordered = append(ordered, slice)
	}
	for _, t := range tasks {
		slice, ok := counts[t.SubjectID]
		if !ok {
			continue // orphaned task, excluded from the chart
		}
		slice.Total++
		if t.Completed {
			slice.Completed++
		}
	}

	grand := 0
	for _, slice := range ordered {
		grand += slice.Total
	}
	if grand == 0 {
		return nil
	}

	out := make([]ProgressSlice, 0, len(ordered))
	cumulative := 0.0
	for _, slice := range ordered {
		if slice.Total == 0 {
			continue
		}
		width := float64(slice.Total) / float64(grand) * 100
		slice.StartPct = cumulative
		slice.EndPct = cumulative + width
		cumulative += width
		out = append(out, *slice)
	}
	return out
}
