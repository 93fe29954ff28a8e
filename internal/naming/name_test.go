package naming

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
		wantHint  string
	}{
		{name: "simple", input: "myapp"},
		{name: "leading underscore", input: "_private"},
		{name: "single letter", input: "a"},
		{name: "single underscore", input: "_"},
		{name: "mixed case with digits", input: "MyApp2"},
		{name: "snake case", input: "my_project_name"},
		{
			name:      "leading digit",
			input:     "123abc",
			wantError: true,
			wantHint:  "starts with a letter or an underscore",
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
			wantHint:  "starts with a letter or an underscore",
		},
		{
			name:      "leading dash",
			input:     "-app",
			wantError: true,
			wantHint:  "starts with a letter or an underscore",
		},
		{
			name:      "leading digit and bad characters",
			input:     "1my-app",
			wantError: true,
			wantHint:  "starts with a letter or an underscore",
		},
		{
			name:      "dash inside",
			input:     "my-app",
			wantError: true,
			wantHint:  "use only letters, numbers and underscores",
		},
		{
			name:      "space inside",
			input:     "my app",
			wantError: true,
			wantHint:  "use only letters, numbers and underscores",
		},
		{
			name:      "trailing dot",
			input:     "app.",
			wantError: true,
			wantHint:  "use only letters, numbers and underscores",
		},
		{
			name:      "non-ascii letter",
			input:     "appé",
			wantError: true,
			wantHint:  "use only letters, numbers and underscores",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("Validate(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if tt.wantError {
				if !errors.Is(err, ErrInvalidProjectName) {
					t.Errorf("expected ErrInvalidProjectName, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.wantHint) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.wantHint)
				}
				return
			}
			if got.String() != tt.input {
				t.Errorf("Validate(%q) = %q, want name unchanged", tt.input, got)
			}
		})
	}
}

func TestValidate_ErrorMessage(t *testing.T) {
	_, err := Validate("123abc")
	if err == nil {
		t.Fatal("expected error")
	}

	want := `"123abc" is not a valid project name. Please make sure that the name starts with a letter or an underscore.`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestProjectName_Substitute(t *testing.T) {
	name := ProjectName("myapp")

	tests := []struct {
		input string
		want  string
	}{
		{"project_name", "myapp"},
		{"project_name.py", "myapp.py"},
		{"test_project_name_x", "test_myapp_x"},
		{"project_name_project_name", "myapp_myapp"},
		{"README.rst", "README.rst"},
		{"Project_Name", "Project_Name"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := name.Substitute(tt.input); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
