package clan

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple lowercase",
			input: "alpha",
			want:  "alpha",
		},
		{
			name:  "mixed case",
			input: "Side Quest",
			want:  "side-quest",
		},
		{
			name:  "whitespace runs",
			input: "a   b\tc",
			want:  "a-b-c",
		},
		{
			name:  "punctuation dropped",
			input: "What's next?",
			want:  "whats-next",
		},
		{
			name:  "leading and trailing space",
			input: "  Demo  ",
			want:  "demo",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateClanID(t *testing.T) {
	tests := []struct {
		name    string
		ordinal int
		input   string
		want    string
	}{
		{
			name:    "first clan",
			ordinal: 0,
			input:   "Alpha",
			want:    "clan-0-alpha",
		},
		{
			name:    "second clan",
			ordinal: 1,
			input:   "Beta",
			want:    "clan-1-beta",
		},
		{
			name:    "multi-word name",
			ordinal: 4,
			input:   "Auth Backend",
			want:    "clan-4-auth-backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateClanID(tt.ordinal, tt.input); got != tt.want {
				t.Errorf("GenerateClanID(%d, %q) = %q, want %q", tt.ordinal, tt.input, got, tt.want)
			}
		})
	}
}

func TestDerivedNames(t *testing.T) {
	if got := BranchName("clan-0-alpha"); got != "clan/clan-0-alpha" {
		t.Errorf("BranchName = %q", got)
	}
	if got := ConstantID("clan-0-alpha"); got != "const-clan-0-alpha" {
		t.Errorf("ConstantID = %q", got)
	}
	if got := ConstantTag("clan-0-alpha"); got != "const/clan-0-alpha" {
		t.Errorf("ConstantTag = %q", got)
	}
	if got := WindowBranch("Synth Window"); got != "window/synth-window" {
		t.Errorf("WindowBranch = %q", got)
	}
}
