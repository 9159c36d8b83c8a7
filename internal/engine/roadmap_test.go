package engine

import "testing"

func TestBuildRoadmap_NeverEmptyNeverOverCap(t *testing.T) {
	for _, ratio := range []float64{0, 0.3, 0.55, 0.8, 1.0} {
		items := buildRoadmap(dimsWith(ratio))
		if len(items) == 0 {
			t.Errorf("ratio %v: roadmap must never be empty", ratio)
		}
		if len(items) > maxRoadmapItems {
			t.Errorf("ratio %v: roadmap has %d items, cap is %d", ratio, len(items), maxRoadmapItems)
		}
	}
}

func TestBuildRoadmap_AllWeakTruncatesToFive(t *testing.T) {
	items := buildRoadmap(dimsWith(0))
	if len(items) != 5 {
		t.Fatalf("expected 5 items for an all-weak repo, got %d", len(items))
	}
	// Truncation keeps rule order; the sixth rule (real-world relevance,
	// Low priority) is the one dropped.
	for _, item := range items {
		if item.Title == "Grow Real-World Traction" {
			t.Error("expected the last rule to be truncated away")
		}
	}
	// Rule order, not priority order: documentation first.
	if items[0].Title != "Strengthen Documentation" {
		t.Errorf("expected documentation item first, got %q", items[0].Title)
	}
}

func TestBuildRoadmap_FallbackWhenStrong(t *testing.T) {
	items := buildRoadmap(dimsWith(1.0))
	if len(items) != 1 {
		t.Fatalf("expected only the fallback item, got %d", len(items))
	}
	if items[0].Title != "Continue Excellence" {
		t.Errorf("expected fallback item, got %q", items[0].Title)
	}
	if items[0].Priority != PriorityLow {
		t.Errorf("expected low priority fallback, got %v", items[0].Priority)
	}
}

func TestBuildRoadmap_CutoffsArePerDimension(t *testing.T) {
	// Testing's cutoff is 0.5: a 55% testing score must not trigger it,
	// while 55% documentation (cutoff 0.6) must.
	dims := dimsWith(1.0)
	dims[DimTesting] = ScoreDimension{Name: DimTesting, Score: 8, MaxScore: 15}               // 53%
	dims[DimDocumentation] = ScoreDimension{Name: DimDocumentation, Score: 13, MaxScore: 25} // 52%

	items := buildRoadmap(dims)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Strengthen Documentation" {
		t.Errorf("expected documentation item, got %q", items[0].Title)
	}
}

func TestBuildRoadmap_ItemsCarryActionLists(t *testing.T) {
	for _, rule := range roadmapRules {
		if n := len(rule.item.ActionItems); n < 5 || n > 6 {
			t.Errorf("%s: expected 5-6 action items, got %d", rule.item.Title, n)
		}
		if rule.item.Description == "" {
			t.Errorf("%s: missing description", rule.item.Title)
		}
	}
}
