package job

import (
	"strings"
	"testing"
)

func validInput() CreateInput {
	return CreateInput{
		Title:        "Build a RAG pipeline",
		Description:  strings.Repeat("We are building a retrieval pipeline. ", 3),
		SkillsNeeded: []string{"RAG Implementation"},
		Commitment:   "5-10 hrs/week",
	}
}

func TestValidateCreate_Clean(t *testing.T) {
	in := validInput()
	c, fe := validateCreate(&in)
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if c != Commitment5To10 {
		t.Errorf("commitment = %q, want %q", c, Commitment5To10)
	}
}

func TestValidateCreate_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"short title", func(in *CreateInput) { in.Title = "ab" }, "title"},
		{"long title", func(in *CreateInput) { in.Title = strings.Repeat("x", 101) }, "title"},
		{"short description", func(in *CreateInput) { in.Description = "too short" }, "description"},
		{"long description", func(in *CreateInput) { in.Description = strings.Repeat("x", 2001) }, "description"},
		{"no skills", func(in *CreateInput) { in.SkillsNeeded = nil }, "skills_needed"},
		{"too many skills", func(in *CreateInput) { in.SkillsNeeded = make([]string, 9) }, "skills_needed"},
		{"bad commitment", func(in *CreateInput) { in.Commitment = "whenever" }, "commitment"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := validInput()
			c.mutate(&in)
			_, fe := validateCreate(&in)
			if fe == nil {
				t.Fatal("expected field errors, got none")
			}
			if _, ok := fe[c.field]; !ok {
				t.Errorf("expected error on field %q, got %v", c.field, fe)
			}
		})
	}
}
