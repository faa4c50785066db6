package costbasis

import "sort"

// MergeTimeline merges acquisition and disposal events into the single
// chronological sequence the pool is folded over.
//
// Events are ordered by date only. For events sharing a date the rule is:
// acquisitions come before disposals, so shares vesting on the day of a sale
// are pooled before the sale draws on them; within one kind the input order
// is preserved (the sort is stable). The rule is pinned by tests, callers
// must not rely on any other same-date ordering.
func MergeTimeline(acquisitions, disposals []Event) []Event {
	events := make([]Event, 0, len(acquisitions)+len(disposals))
	events = append(events, acquisitions...)
	events = append(events, disposals...)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Kind < events[j].Kind
	})
	return events
}
