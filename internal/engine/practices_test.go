package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/repogauge/internal/github"
)

func TestScoreDevelopmentPractices_MaxScore(t *testing.T) {
	// 5 (>50 commits) + 3 (weekly cadence) + 2 (main branch) + 3 (recent
	// activity vs age) + 2 (license) = 15.
	d := scoreDevelopmentPractices(testNow, strongRepo(testNow), strongHistory(testNow))
	if d.Score != 15 {
		t.Errorf("expected max 15, got %d (feedback: %v)", d.Score, d.Feedback)
	}
}

func TestScoreDevelopmentPractices_WeeklyCadence(t *testing.T) {
	// 5 commits exactly 7 days apart: average gap 7 days, under the
	// 14-day cutoff.
	history := &github.CommitHistory{
		TotalCount: 5,
		Commits:    commitsEvery(testNow, 5, 7*24*time.Hour, "Improve cadence calculations"),
	}

	avg := averageCommitGapDays(history.Commits)
	if avg != 7 {
		t.Errorf("expected average gap 7 days, got %v", avg)
	}

	meta := strongRepo(testNow)
	d := scoreDevelopmentPractices(testNow, meta, history)
	joined := strings.Join(d.Feedback, "\n")
	if !strings.Contains(joined, "Consistent commit cadence") {
		t.Errorf("expected cadence bonus feedback, got %v", d.Feedback)
	}
}

func TestScoreDevelopmentPractices_CadenceBuckets(t *testing.T) {
	cases := []struct {
		name   string
		gap    time.Duration
		points int
	}{
		{"weekly", 7 * 24 * time.Hour, 3},
		{"three-weekly", 21 * 24 * time.Hour, 2},
		{"sporadic", 45 * 24 * time.Hour, 1},
	}
	base := scoreDevelopmentPractices(testNow, strongRepo(testNow), &github.CommitHistory{
		TotalCount: 80,
		Commits:    commitsEvery(testNow, 4, 7*24*time.Hour, "Small focused change to the parser"),
	})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			history := &github.CommitHistory{
				TotalCount: 80,
				Commits:    commitsEvery(testNow, 6, tc.gap, "Small focused change to the parser"),
			}
			d := scoreDevelopmentPractices(testNow, strongRepo(testNow), history)
			if d.Score-base.Score != tc.points {
				t.Errorf("expected %d cadence points, got %d", tc.points, d.Score-base.Score)
			}
		})
	}
}

func TestScoreDevelopmentPractices_CadenceNeedsFiveCommits(t *testing.T) {
	history := &github.CommitHistory{
		TotalCount: 4,
		Commits:    commitsEvery(testNow, 4, 24*time.Hour, "Quick iteration on the renderer"),
	}
	d := scoreDevelopmentPractices(testNow, strongRepo(testNow), history)
	if strings.Contains(strings.Join(d.Feedback, "\n"), "cadence") {
		t.Error("cadence must not be evaluated with fewer than 5 sampled commits")
	}
}

func TestScoreDevelopmentPractices_ZeroCommitsEmitsNoVolumeLine(t *testing.T) {
	meta := strongRepo(testNow)

	none := scoreDevelopmentPractices(testNow, meta, &github.CommitHistory{})
	one := scoreDevelopmentPractices(testNow, meta, &github.CommitHistory{TotalCount: 1})

	if len(one.Feedback) != len(none.Feedback)+1 {
		t.Errorf("expected exactly one extra feedback line for nonzero commits: %d vs %d",
			len(one.Feedback), len(none.Feedback))
	}
}

func TestScoreDevelopmentPractices_CommitVolumeBuckets(t *testing.T) {
	cases := []struct {
		total  int
		points int
	}{
		{200, 5},
		{51, 5},
		{50, 3},
		{11, 3},
		{10, 1},
		{1, 1},
		{0, 0},
	}
	for _, tc := range cases {
		meta := strongRepo(testNow)
		d := scoreDevelopmentPractices(testNow, meta, &github.CommitHistory{TotalCount: tc.total})
		zero := scoreDevelopmentPractices(testNow, meta, &github.CommitHistory{})
		if d.Score-zero.Score != tc.points {
			t.Errorf("total=%d: expected %d points, got %d", tc.total, tc.points, d.Score-zero.Score)
		}
	}
}

func TestScoreDevelopmentPractices_UnconventionalBranch(t *testing.T) {
	meta := strongRepo(testNow)
	meta.DefaultBranch = "trunk"

	conventional := scoreDevelopmentPractices(testNow, strongRepo(testNow), nil)
	unconventional := scoreDevelopmentPractices(testNow, meta, nil)

	if conventional.Score-unconventional.Score != 2 {
		t.Errorf("expected 2-point branch convention delta, got %d",
			conventional.Score-unconventional.Score)
	}
	// No penalty feedback for unconventional names.
	if len(conventional.Feedback) != len(unconventional.Feedback)+1 {
		t.Error("expected no feedback line for unconventional default branch")
	}
}

func TestScoreDevelopmentPractices_LifetimeActivityRatio(t *testing.T) {
	// Two-year-old repo updated 30 days ago: 30 < 0.1*730.
	recent := strongRepo(testNow)
	recent.UpdatedAt = testNow.Add(-30 * 24 * time.Hour)

	// Updated 300 days ago: 300 < 0.5*730 but not < 0.1*730.
	moderate := strongRepo(testNow)
	moderate.UpdatedAt = testNow.Add(-300 * 24 * time.Hour)

	// Updated 600 days ago: inactive for most of its lifetime.
	dormant := strongRepo(testNow)
	dormant.UpdatedAt = testNow.Add(-600 * 24 * time.Hour)

	dRecent := scoreDevelopmentPractices(testNow, recent, nil)
	dModerate := scoreDevelopmentPractices(testNow, moderate, nil)
	dDormant := scoreDevelopmentPractices(testNow, dormant, nil)

	if dRecent.Score-dModerate.Score != 1 {
		t.Errorf("expected 3 vs 2 ratio points, got delta %d", dRecent.Score-dModerate.Score)
	}
	if dModerate.Score-dDormant.Score != 2 {
		t.Errorf("expected 2 vs 0 ratio points, got delta %d", dModerate.Score-dDormant.Score)
	}
}
