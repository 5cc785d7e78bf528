// Package table holds the stateful orchestrator behind every listings table:
// it owns the live record collection, the active tab, the structured filter,
// the detail selection and the group-by toggle, and composes the view-state
// store with the filter model into the final displayed view.
package table

import (
	"sort"
	"strconv"
	"time"

	"brokerctl/internal/filter"
	"brokerctl/internal/listing"
	"brokerctl/internal/viewstate"
	"brokerctl/pkg/logging"
)

// MutateResult reports what a record mutation did. An unknown code or field
// is an explicit, observable no-op rather than a silently swallowed write.
type MutateResult int

const (
	MutateNoOp MutateResult = iota
	MutateApplied
)

// String makes MutateResult satisfy fmt.Stringer.
func (r MutateResult) String() string {
	if r == MutateApplied {
		return "Applied"
	}
	return "NoOp"
}

// DetailClearGrace is how long a closed detail panel keeps its record before
// the selection reference is cleared, so the panel does not visibly empty
// mid-animation.
const DetailClearGrace = 300 * time.Millisecond

// Controller is the table orchestrator. One instance owns one table's record
// collection exclusively; two tables on the same page hold independent copies
// and share only the injected view-state store.
//
// All methods are intended for a single goroutine (the UI event loop).
type Controller struct {
	records []listing.Listing

	tab      listing.ListingType
	ownerTab listing.OwnerType
	spec     *filter.Spec

	selected   *listing.Listing
	detailOpen bool
	closeGen   int

	groupByProject bool

	view   *viewstate.Store
	notify func(message string)
}

// New seeds a controller with a copy of the page's initial records. The
// view-state store is shared by reference; notify receives user-facing
// notifications (may be nil).
func New(records []listing.Listing, view *viewstate.Store, notify func(string)) *Controller {
	c := &Controller{
		records: append([]listing.Listing(nil), records...),
		view:    view,
		notify:  notify,
	}
	if c.notify == nil {
		c.notify = func(string) {}
	}
	return c
}

// Records returns a copy of the full live collection, before any filtering.
func (c *Controller) Records() []listing.Listing {
	return append([]listing.Listing(nil), c.records...)
}

// Visible computes the displayed record set: tab filter, then owner filter,
// then the structured filter spec. A nil spec means tab filters only. With
// grouping enabled the result is stable-sorted by project name so records of
// one project sit together; relative order inside a project is preserved.
func (c *Controller) Visible() []listing.Listing {
	out := filter.ApplyListingTypeTab(c.records, c.tab)
	out = filter.ApplyOwnerTypeTab(out, c.ownerTab)
	if c.spec != nil {
		out = filter.Apply(out, *c.spec)
	}
	if c.groupByProject {
		// The pre-filters return the input slice unchanged when inactive, so
		// sort a copy or the live collection gets reordered.
		out = append([]listing.Listing(nil), out...)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ProjectName < out[j].ProjectName
		})
	}
	return out
}

// SetTab selects the listing-type tab. Empty means all types.
func (c *Controller) SetTab(tab listing.ListingType) {
	c.tab = tab
}

// Tab returns the active listing-type tab.
func (c *Controller) Tab() listing.ListingType { return c.tab }

// SetOwnerType selects the owner-type pre-filter. Empty means all owners.
func (c *Controller) SetOwnerType(owner listing.OwnerType) {
	c.ownerTab = owner
}

// OwnerType returns the active owner-type pre-filter.
func (c *Controller) OwnerType() listing.OwnerType { return c.ownerTab }

// ChangeFilter replaces the active filter spec. Nil reverts to tab-only
// filtering.
func (c *Controller) ChangeFilter(spec *filter.Spec) {
	c.spec = spec
}

// Filter returns the active filter spec, or nil.
func (c *Controller) Filter() *filter.Spec { return c.spec }

// MutateField updates the one record matching code, replacing it immutably
// in the collection. If that record is also the open detail selection, the
// selection is updated in the same operation, so the table and the detail view
// must never disagree about a record's value. Unknown codes and fields
// return MutateNoOp with the collection untouched.
func (c *Controller) MutateField(code string, field listing.Field, value string) MutateResult {
	idx := -1
	for i := range c.records {
		if c.records[i].Code == code {
			idx = i
			break
		}
	}
	if idx < 0 {
		logging.Debug("Table", "mutate %s on unknown code %s: no-op", field, code)
		return MutateNoOp
	}

	updated := c.records[idx]
	switch field {
	case listing.FieldStarred:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return MutateNoOp
		}
		updated.IsStarred = b
	case listing.FieldMarketingStatus:
		updated.MarketingStatus = listing.MarketingStatus(value)
	case listing.FieldListingType:
		updated.ListingType = listing.ListingType(value)
	case listing.FieldListingStatus:
		updated.ListingStatus = listing.ListingStatus(value)
	default:
		return MutateNoOp
	}
	updated.UpdatedAt = time.Now()

	next := append([]listing.Listing(nil), c.records...)
	next[idx] = updated
	c.records = next

	if c.selected != nil && c.selected.Code == code {
		sel := updated
		c.selected = &sel
	}
	return MutateApplied
}

// ToggleStar flips the star on the record matching code.
func (c *Controller) ToggleStar(code string) MutateResult {
	for i := range c.records {
		if c.records[i].Code == code {
			return c.MutateField(code, listing.FieldStarred, strconv.FormatBool(!c.records[i].IsStarred))
		}
	}
	return MutateNoOp
}

// SelectRow sets the detail selection to the record matching code and opens
// the detail view. Selecting supersedes any pending deferred clear from an
// earlier close. Returns false for an unknown code.
func (c *Controller) SelectRow(code string) bool {
	for i := range c.records {
		if c.records[i].Code == code {
			sel := c.records[i]
			c.selected = &sel
			c.detailOpen = true
			c.closeGen++
			return true
		}
	}
	return false
}

// Selected returns the current detail selection, if any. The selection can
// outlive a close for the grace period; DetailOpen distinguishes the two.
func (c *Controller) Selected() (listing.Listing, bool) {
	if c.selected == nil {
		return listing.Listing{}, false
	}
	return *c.selected, true
}

// DetailOpen reports whether the detail view is open.
func (c *Controller) DetailOpen() bool { return c.detailOpen }

// CloseDetail closes the detail view immediately and returns the generation
// token for the deferred selection clear. The caller schedules
// ClearSelection(gen) after DetailClearGrace.
func (c *Controller) CloseDetail() int {
	c.detailOpen = false
	c.closeGen++
	return c.closeGen
}

// ClearSelection drops the selection reference, but only if gen still names
// the most recent close; a re-open before the grace delay elapsed must not
// be wiped by the stale timer. Reports whether it cleared anything.
func (c *Controller) ClearSelection(gen int) bool {
	if gen != c.closeGen || c.detailOpen {
		return false
	}
	if c.selected == nil {
		return false
	}
	c.selected = nil
	return true
}

// ToggleGroup flips the group-by-project toggle. The data is untouched; the
// only side effect is the user-facing notification.
func (c *Controller) ToggleGroup() bool {
	c.groupByProject = !c.groupByProject
	if c.groupByProject {
		c.notify("Grouping by project")
	} else {
		c.notify("Grouping disabled")
	}
	return c.groupByProject
}

// GroupByProject reports whether grouping is enabled.
func (c *Controller) GroupByProject() bool { return c.groupByProject }

// ViewStore returns the injected view-state store.
func (c *Controller) ViewStore() *viewstate.Store { return c.view }
