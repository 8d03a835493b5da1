package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spigell/prep-roadmap/internal/roadmap"
)

func googleRoadmap() *roadmap.Roadmap {
	skills := roadmap.NewKeywordExtractor().Extract(context.Background(), "Python, data structures, 1+ years", "Software Engineer")
	return roadmap.Assemble(skills, roadmap.Profile("Google"), "Software Engineer")
}

func TestPresenterSummary(t *testing.T) {
	var out bytes.Buffer
	NewPresenter(&out).Summary(googleRoadmap())

	text := out.String()
	expected := []string{
		"INTERVIEW PREPARATION ROADMAP",
		"Company: Google",
		"Role: Software Engineer",
		"Difficulty: Hard",
		"Timeline: 18 weeks",
		"INTERVIEW ROUNDS (5 rounds)",
		"1. Phone Screening",
		"   Topics: Resume, Basic Technical",
		"   Duration: 30 min",
		"5. Behavioral",
		"PREP ORDER: DSA Fundamentals → System Design → Backend Development",
	}

	for _, want := range expected {
		if !strings.Contains(text, want) {
			t.Fatalf("expected summary to contain %q, got:\n%s", want, text)
		}
	}

	if strings.Contains(text, "\x1b[") {
		t.Fatalf("expected no ANSI sequences when writing to a buffer")
	}
}

func TestPresenterSummarySkipsMissingDuration(t *testing.T) {
	r := googleRoadmap()
	r.Rounds = []roadmap.InterviewRound{{Type: "Take-home", Topics: []string{"Project"}}}

	var out bytes.Buffer
	NewPresenter(&out).Summary(r)

	if strings.Contains(out.String(), "Duration:") {
		t.Fatalf("expected no duration line, got:\n%s", out.String())
	}
}

func TestPresenterJSON(t *testing.T) {
	var out bytes.Buffer
	if err := NewPresenter(&out).JSON("roadmap_Google.json", googleRoadmap()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "roadmap_Google.json") {
		t.Fatalf("expected file name in output: %s", text)
	}
	if !strings.Contains(text, `"preparation_timeline": "18 weeks"`) {
		t.Fatalf("expected roadmap json in output: %s", text)
	}
}
