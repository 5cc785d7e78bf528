package columns

import (
	"sort"

	"brokerctl/internal/listing"
	"brokerctl/internal/viewstate"
)

// Resolve turns the view state and the registry into the ordered column list
// a table renders.
//
// The registry is filtered to the visible keys, then stable-sorted by each
// key's position in the column order. Keys absent from the order sort after
// every ordered key and keep their relative registry position among
// themselves. If the star column is visible and a toggle handler is supplied,
// its descriptor is substituted with one carrying the handler.
//
// Every returned key is unique and the result never exceeds the visible set.
func Resolve(view viewstate.ViewState, registry []Column, starToggle func(code string)) []Column {
	visible := make(map[string]struct{}, len(view.Visible))
	for _, k := range view.Visible {
		visible[k] = struct{}{}
	}

	resolved := make([]Column, 0, len(view.Visible))
	for _, col := range registry {
		if _, ok := visible[col.Key]; ok {
			resolved = append(resolved, col)
		}
	}

	position := make(map[string]int, len(view.Order))
	for i, k := range view.Order {
		if _, seen := position[k]; !seen {
			position[k] = i
		}
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		pi, iOK := position[resolved[i].Key]
		pj, jOK := position[resolved[j].Key]
		if iOK && jOK {
			return pi < pj
		}
		// Unknown keys sort last; among themselves the stable sort keeps
		// their registry order.
		return iOK && !jOK
	})

	if starToggle != nil {
		for i := range resolved {
			if resolved[i].Key == listing.ColStarred {
				resolved[i].Toggle = starToggle
			}
		}
	}

	return resolved
}
