package engine

import (
	"strings"
	"testing"
)

func TestScoreDocumentation_MissingReadmeShortCircuits(t *testing.T) {
	meta := strongRepo(testNow)
	meta.Readme = ""

	d := scoreDocumentation(testNow, meta, nil)
	if d.Score != 0 {
		t.Errorf("expected score 0 without README, got %d", d.Score)
	}
	if len(d.Feedback) != 2 {
		t.Fatalf("expected exactly 2 feedback lines, got %d", len(d.Feedback))
	}
	for _, line := range d.Feedback {
		if !strings.HasPrefix(line, "✗") {
			t.Errorf("expected critical marker on %q", line)
		}
	}
}

func TestScoreDocumentation_PresentReadmeScoresAtLeastThree(t *testing.T) {
	meta := strongRepo(testNow)
	meta.Readme = "hi"

	d := scoreDocumentation(testNow, meta, nil)
	if d.Score < 3 {
		t.Errorf("expected score >= 3 with any README, got %d", d.Score)
	}
}

func TestScoreDocumentation_FullReadmeHitsMax(t *testing.T) {
	// strongReadme exercises every check: >2000 chars, install, usage,
	// contributing, license, image, code fences, badges.
	d := scoreDocumentation(testNow, strongRepo(testNow), nil)
	if d.Score != 25 {
		t.Errorf("expected max 25, got %d (feedback: %v)", d.Score, d.Feedback)
	}
}

func TestScoreDocumentation_ChecksAreCaseInsensitive(t *testing.T) {
	meta := strongRepo(testNow)
	meta.Readme = "INSTALL instructions and USAGE notes plus a LICENSE section"

	d := scoreDocumentation(testNow, meta, nil)
	// 3 (length <=500) + 3 install + 3 usage + 2 license = 11.
	if d.Score != 11 {
		t.Errorf("expected 11, got %d (feedback: %v)", d.Score, d.Feedback)
	}
}

func TestScoreDocumentation_LengthBuckets(t *testing.T) {
	cases := []struct {
		name   string
		length int
		points int
	}{
		{"comprehensive", 2500, 10},
		{"solid", 800, 6},
		{"minimal", 100, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := strongRepo(testNow)
			meta.Readme = strings.Repeat("x", tc.length)

			d := scoreDocumentation(testNow, meta, nil)
			if d.Score != tc.points {
				t.Errorf("expected %d, got %d", tc.points, d.Score)
			}
		})
	}
}

func TestScoreDocumentation_MissingImagesSuggestsThem(t *testing.T) {
	meta := strongRepo(testNow)
	meta.Readme = strings.Repeat("plain text ", 100)

	d := scoreDocumentation(testNow, meta, nil)
	joined := strings.Join(d.Feedback, "\n")
	if !strings.Contains(joined, "screenshots or diagrams") {
		t.Error("expected suggestion feedback when no images are present")
	}
}
