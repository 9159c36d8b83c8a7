package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

func TestScoreCodeQuality_MaxScore(t *testing.T) {
	// Primary language, 2 languages, updated 5 days ago, 10/10 good
	// commits, size 5000, license: 3+2+5+5+3+2 = 20.
	meta := strongRepo(testNow)
	history := &github.CommitHistory{
		TotalCount: 10,
		Commits:    commitsEvery(testNow, 10, 24*time.Hour, "Refactor scoring pipeline for clarity"),
	}

	d := scoreCodeQuality(testNow, meta, history)
	if d.Score != 20 {
		t.Errorf("expected max score 20, got %d", d.Score)
	}
	if d.MaxScore != 20 {
		t.Errorf("expected max 20, got %d", d.MaxScore)
	}
}

func TestScoreCodeQuality_BareRepo(t *testing.T) {
	meta := &github.Repository{
		Name:      "bare",
		CreatedAt: testNow.AddDate(-1, 0, 0),
		UpdatedAt: testNow.AddDate(-1, 0, 0),
	}

	d := scoreCodeQuality(testNow, meta, nil)
	if d.Score != 0 {
		t.Errorf("expected 0 for bare repo, got %d", d.Score)
	}

	// Absent primary language and absent license both produce explicit
	// negative feedback.
	joined := strings.Join(d.Feedback, "\n")
	if !strings.Contains(joined, "No primary language") {
		t.Error("expected negative feedback for missing primary language")
	}
	if !strings.Contains(joined, "No license") {
		t.Error("expected negative feedback for missing license")
	}
}

func TestScoreCodeQuality_NoCommitsEmitsNoCommitLine(t *testing.T) {
	meta := strongRepo(testNow)

	withCommits := scoreCodeQuality(testNow, meta, strongHistory(testNow))
	without := scoreCodeQuality(testNow, meta, &github.CommitHistory{})

	if len(withCommits.Feedback) != len(without.Feedback)+1 {
		t.Errorf("expected exactly one extra feedback line with commits: %d vs %d",
			len(withCommits.Feedback), len(without.Feedback))
	}
}

func TestScoreCodeQuality_UpdateRecencyBuckets(t *testing.T) {
	cases := []struct {
		name   string
		age    time.Duration
		points int
	}{
		{"under 30 days", 10 * 24 * time.Hour, 5},
		{"under 90 days", 60 * 24 * time.Hour, 3},
		{"over 90 days", 120 * 24 * time.Hour, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := strongRepo(testNow)
			meta.UpdatedAt = testNow.Add(-tc.age)

			fresh := scoreCodeQuality(testNow, meta, nil)

			meta.UpdatedAt = testNow.Add(-200 * 24 * time.Hour)
			stale := scoreCodeQuality(testNow, meta, nil)

			if fresh.Score-stale.Score != tc.points {
				t.Errorf("expected recency delta %d, got %d", tc.points, fresh.Score-stale.Score)
			}
		})
	}
}

func TestGoodCommitRatio(t *testing.T) {
	commits := []github.Commit{
		{Message: "Add concurrent fetch with bounded workers"}, // good
		{Message: "Update README.md"},                          // lazy prefix
		{Message: "fix"},                                       // too short
		{Message: "update dependencies across the board"},      // lowercase prefix still counts
		{Message: "Updated the docs with new sections"},        // "Updated " does not match the prefix
	}
	ratio := goodCommitRatio(commits)
	if ratio != 0.6 {
		t.Errorf("expected ratio 0.6, got %v", ratio)
	}
}

func TestScoreCodeQuality_CommitRatioBuckets(t *testing.T) {
	meta := strongRepo(testNow)

	mostlyGood := &github.CommitHistory{Commits: append(
		commitsEvery(testNow, 8, time.Hour, "Implement cache invalidation logic"),
		commitsEvery(testNow, 2, time.Hour, "Update x")...,
	)}
	mixed := &github.CommitHistory{Commits: append(
		commitsEvery(testNow, 5, time.Hour, "Implement cache invalidation logic"),
		commitsEvery(testNow, 5, time.Hour, "Update x")...,
	)}
	mostlyLazy := &github.CommitHistory{Commits: append(
		commitsEvery(testNow, 2, time.Hour, "Implement cache invalidation logic"),
		commitsEvery(testNow, 8, time.Hour, "Update x")...,
	)}

	high := scoreCodeQuality(testNow, meta, mostlyGood)
	mid := scoreCodeQuality(testNow, meta, mixed)
	low := scoreCodeQuality(testNow, meta, mostlyLazy)

	if high.Score-low.Score != 4 {
		t.Errorf("expected 5 vs 1 points between >70%% and <=40%% buckets, got delta %d", high.Score-low.Score)
	}
	if mid.Score-low.Score != 2 {
		t.Errorf("expected 3 vs 1 points between >40%% and <=40%% buckets, got delta %d", mid.Score-low.Score)
	}
}
