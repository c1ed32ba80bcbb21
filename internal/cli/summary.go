package cli

import "github.com/asmutils/agptool/pkg/agp"

// objectSummary aggregates one object's rows for display.
type objectSummary struct {
	name       string
	length     int
	components int
	gaps       int
	gapBases   int
	rows       []agp.Row
}

// summarize folds AGP entries into one summary per object, in input
// order.
func summarize(entries []agp.Entry) []objectSummary {
	var summaries []objectSummary
	index := map[string]int{}
	for _, e := range entries {
		if e.IsComment() {
			continue
		}
		name := e.Row.Object()
		i, ok := index[name]
		if !ok {
			i = len(summaries)
			index[name] = i
			summaries = append(summaries, objectSummary{name: name})
		}
		s := &summaries[i]
		s.rows = append(s.rows, e.Row)
		if s.length < e.Row.End() {
			s.length = e.Row.End()
		}
		if gap, isGap := e.Row.(*agp.Gap); isGap {
			s.gaps++
			s.gapBases += gap.GapLength
		} else {
			s.components++
		}
	}
	return summaries
}
