package agp

import "fmt"

// ComponentNotDefinedError is returned by Compose when an outer
// component row names an object the inner AGP does not define, or names
// one that an earlier outer row already consumed.
type ComponentNotDefinedError struct {
	Name string
}

func (e *ComponentNotDefinedError) Error() string {
	return fmt.Sprintf("component %q not defined in inner AGP", e.Name)
}

// BrokenComponentError is returned by Compose when an outer row uses
// only part of an inner object. Breaking components during composition
// is not supported; split the inner AGP first.
type BrokenComponentError struct {
	Outer *Component
	Inner Row
}

func (e *BrokenComponentError) Error() string {
	return fmt.Sprintf("%s:%d-%d does not fully contain %s:%d-%d; breaking components is not supported",
		e.Outer.Object(), e.Outer.Begin(), e.Outer.End(),
		e.Inner.Object(), e.Inner.Begin(), e.Inner.End())
}

// Compose flattens two layers of assembly into one: outer builds
// objects out of mid-level units, inner builds those same units out of
// low-level components, and the result builds the outer objects
// directly from the low-level components.
//
// Every outer component row is replaced by the full row run of the
// inner object it names, offset to the outer row's position and
// reversed first when the outer orientation is "-". The outer row must
// span the inner object exactly, from 1 to its last position; partial
// use is a *BrokenComponentError. Each inner object may be consumed by
// at most one outer row. Outer gap rows pass through with only their
// part numbers rewritten; part numbers restart at 1 for each outer
// object.
//
// When printUnused is set, inner objects never consumed by the outer
// AGP are appended, unmodified and in input order, after the composed
// output.
func Compose(outer, inner []Entry, printUnused bool) ([]Entry, error) {
	innerRuns := map[string][]Row{}
	var innerOrder []string
	for _, e := range inner {
		if e.IsComment() {
			continue
		}
		name := e.Row.Object()
		if _, ok := innerRuns[name]; !ok {
			innerOrder = append(innerOrder, name)
		}
		innerRuns[name] = append(innerRuns[name], e.Row)
	}

	var out []Entry
	previousObject := ""
	partCounter := 1
	for _, e := range outer {
		if e.IsComment() {
			out = append(out, e)
			continue
		}

		if previousObject != "" && previousObject != e.Row.Object() {
			partCounter = 1
		}
		previousObject = e.Row.Object()

		switch row := e.Row.(type) {
		case *Gap:
			row.part = partCounter
			partCounter++
			out = append(out, Entry{Row: row})

		case *Component:
			innerRows, ok := innerRuns[row.ID]
			if !ok {
				return nil, &ComponentNotDefinedError{Name: row.ID}
			}
			delete(innerRuns, row.ID)

			last := innerRows[len(innerRows)-1]
			if row.CompBegin != 1 || row.CompEnd != last.End() {
				return nil, &BrokenComponentError{Outer: row, Inner: last}
			}

			if row.Orientation == "-" {
				innerRows = ReverseRows(innerRows)
			}

			offset := row.Begin() - 1
			for _, innerRow := range innerRows {
				c := innerRow.common()
				c.object = row.Object()
				c.begin += offset
				c.end += offset
				c.part = partCounter
				partCounter++
				out = append(out, Entry{Row: innerRow})
			}
		}
	}

	if printUnused {
		for _, name := range innerOrder {
			for _, row := range innerRuns[name] {
				out = append(out, Entry{Row: row})
			}
		}
	}
	return out, nil
}
