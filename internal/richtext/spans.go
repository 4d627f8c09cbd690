package richtext

// splitInlines cuts an inline sequence at the character offsets [start, end)
// and returns the runs before, inside, and after the range. Runs that straddle
// a boundary are split into pieces carrying the same marks and link target.
func splitInlines(inlines []Inline, start, end int) (before, inside, after []Inline) {
	offset := 0
	for _, run := range inlines {
		runStart := offset
		runEnd := offset + len([]rune(run.Text))
		offset = runEnd

		if runEnd <= start {
			before = append(before, run)
			continue
		}
		if runStart >= end {
			after = append(after, run)
			continue
		}

		text := []rune(run.Text)
		if runStart < start {
			piece := run
			piece.Text = string(text[:start-runStart])
			before = append(before, piece)
		}
		lo := max(start, runStart)
		hi := min(end, runEnd)
		piece := run
		piece.Text = string(text[lo-runStart : hi-runStart])
		inside = append(inside, piece)
		if runEnd > end {
			tail := run
			tail.Text = string(text[end-runStart:])
			after = append(after, tail)
		}
	}
	return before, inside, after
}

// mergeInlines joins adjacent runs with identical styling and drops empty
// ones, keeping the serialized form canonical.
func mergeInlines(inlines []Inline) []Inline {
	out := make([]Inline, 0, len(inlines))
	for _, run := range inlines {
		if run.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameStyle(run) {
			out[n-1].Text += run.Text
			continue
		}
		out = append(out, run)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func inlineLength(inlines []Inline) int {
	total := 0
	for _, run := range inlines {
		total += len([]rune(run.Text))
	}
	return total
}

func concatInlines(groups ...[]Inline) []Inline {
	var out []Inline
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
