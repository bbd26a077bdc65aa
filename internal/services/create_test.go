package services

import (
	"errors"
	"strings"
	"testing"
)

func validInput() ProjectInput {
	return ProjectInput{
		Title:         "Campus garden",
		Description:   strings.Repeat("A community garden on the roof of the main building. ", 3),
		AuthorName:    "Olga Smirnova",
		AuthorFaculty: "Natural Sciences",
		AuthorEmail:   "olga@university.edu",
		TargetAmount:  15000,
	}
}

func TestValidateProjectInput(t *testing.T) {
	if err := ValidateProjectInput(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	in := validInput()
	in.Title = "abc"
	if err := ValidateProjectInput(in); !errors.Is(err, ErrTitleTooShort) {
		t.Errorf("short title: got %v, want ErrTitleTooShort", err)
	}

	in = validInput()
	in.Description = "too short"
	if err := ValidateProjectInput(in); !errors.Is(err, ErrDescriptionTooShort) {
		t.Errorf("short description: got %v, want ErrDescriptionTooShort", err)
	}

	in = validInput()
	in.AuthorName = "  "
	if err := ValidateProjectInput(in); !errors.Is(err, ErrAuthorNameRequired) {
		t.Errorf("blank author: got %v, want ErrAuthorNameRequired", err)
	}

	in = validInput()
	in.AuthorFaculty = ""
	if err := ValidateProjectInput(in); !errors.Is(err, ErrFacultyRequired) {
		t.Errorf("blank faculty: got %v, want ErrFacultyRequired", err)
	}

	in = validInput()
	in.AuthorEmail = "not-an-email"
	if err := ValidateProjectInput(in); !errors.Is(err, ErrEmailInvalid) {
		t.Errorf("bad email: got %v, want ErrEmailInvalid", err)
	}

	in = validInput()
	in.TargetAmount = 999
	if err := ValidateProjectInput(in); !errors.Is(err, ErrTargetTooSmall) {
		t.Errorf("small target: got %v, want ErrTargetTooSmall", err)
	}
}
