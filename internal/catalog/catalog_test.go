package catalog

import "testing"

func TestCatalogsLoaded(t *testing.T) {
	if len(Careers()) != 10 {
		t.Errorf("expected 10 careers, got %d", len(Careers()))
	}
	if len(Difficulties()) != 3 {
		t.Errorf("expected 3 difficulties, got %d", len(Difficulties()))
	}
}

func TestGetCareer(t *testing.T) {
	c, err := GetCareer("software-engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Label.EN != "Software Engineer" {
		t.Errorf("unexpected label: %q", c.Label.EN)
	}
	if c.Label.Text("es") != "Ingeniero de Software" {
		t.Errorf("unexpected ES label: %q", c.Label.Text("es"))
	}

	if _, err := GetCareer("astronaut"); err == nil {
		t.Error("expected error for unknown career")
	}
}

func TestGetDifficulty(t *testing.T) {
	d, err := GetDifficulty("intermediate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.QuestionsCount != 5 {
		t.Errorf("expected 5 questions, got %d", d.QuestionsCount)
	}
	if d.MinimumAnswerLength != 150 {
		t.Errorf("expected min length 150, got %d", d.MinimumAnswerLength)
	}

	if _, err := GetDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestCategorizeScore(t *testing.T) {
	th := ScoreThresholds{Poor: 40, Average: 60, Good: 75, Excellent: 85}

	tests := []struct {
		score int
		want  Category
	}{
		{0, CategoryPoor},
		{39, CategoryPoor},
		{59, CategoryPoor},
		{60, CategoryAverage},
		{74, CategoryAverage},
		{75, CategoryGood},
		{84, CategoryGood},
		{85, CategoryExcellent},
		{100, CategoryExcellent},
	}

	for _, tt := range tests {
		if got := CategorizeScore(tt.score, th); got != tt.want {
			t.Errorf("CategorizeScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCategorizeScore_PerDifficulty(t *testing.T) {
	// The same score lands in different bands depending on the difficulty.
	beginner, _ := GetDifficulty("beginner")
	advanced, _ := GetDifficulty("advanced")

	if got := CategorizeScore(80, beginner.ScoreThresholds); got != CategoryGood {
		t.Errorf("beginner 80 = %q, want good", got)
	}
	if got := CategorizeScore(80, advanced.ScoreThresholds); got != CategoryAverage {
		t.Errorf("advanced 80 = %q, want average", got)
	}
}
