package costbasis

import "testing"

func TestMergeTimeline_SortsByDate(t *testing.T) {
	acqs := []Event{
		acquire("2024-03-10", 10, 10, 1),
		acquire("2024-01-10", 10, 10, 1),
	}
	disps := []Event{
		dispose("2024-02-10", 5, 12, 1),
	}

	events := MergeTimeline(acqs, disps)
	want := []string{"2024-01-10", "2024-02-10", "2024-03-10"}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, on := range want {
		if events[i].Date != day(on) {
			t.Errorf("events[%d].Date = %s, want %s", i, events[i].Date, on)
		}
	}
}

// Same-date ordering is a pinned rule, not an accident: the acquisition is
// pooled before the disposal draws on it, so vest-and-sell-same-day inputs
// compute instead of overselling.
func TestMergeTimeline_SameDateAcquireFirst(t *testing.T) {
	acqs := []Event{acquire("2024-01-10", 100, 10, 1)}
	disps := []Event{dispose("2024-01-10", 100, 10, 1)}

	events := MergeTimeline(acqs, disps)
	if events[0].Kind != Acquire || events[1].Kind != Dispose {
		t.Fatalf("same-date order = %s, %s; want Acquire, Dispose", events[0].Kind, events[1].Kind)
	}

	// The whole point: the merged sequence must fold cleanly.
	if _, err := ComputeGains(events); err != nil {
		t.Errorf("ComputeGains() error = %v, want same-day vest+sell to compute", err)
	}
}

// Within one kind, same-date events keep their input order.
func TestMergeTimeline_StableWithinKind(t *testing.T) {
	acqs := []Event{
		acquire("2024-01-10", 1, 10, 1),
		acquire("2024-01-10", 2, 11, 1),
		acquire("2024-01-10", 3, 12, 1),
	}
	events := MergeTimeline(acqs, nil)
	for i, units := range []int{1, 2, 3} {
		if !events[i].Units.Equal(Q(units)) {
			t.Errorf("events[%d].Units = %s, want %d", i, events[i].Units, units)
		}
	}
}

func TestMergeTimeline_EmptyInputs(t *testing.T) {
	if got := MergeTimeline(nil, nil); len(got) != 0 {
		t.Errorf("MergeTimeline(nil, nil) = %d events, want 0", len(got))
	}
	disps := []Event{dispose("2024-02-10", 5, 12, 1)}
	if got := MergeTimeline(nil, disps); len(got) != 1 {
		t.Errorf("MergeTimeline(nil, disposals) = %d events, want 1", len(got))
	}
}
