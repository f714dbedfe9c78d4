package main

import "testing"

func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets all rules", "Aa1!aaaa", true},
		{"longer password", "Str0ng&Secret", true},
		{"too short", "Aa1!aaa", false},
		{"no uppercase", "aa1!aaaa", false},
		{"no lowercase", "AA1!AAAA", false},
		{"no digit", "Aa!aaaaa", false},
		{"no special character", "Aa1aaaaa", false},
		{"empty", "", false},
		{"common weak password", "password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkPasswordPolicy(tt.password); got != tt.want {
				t.Errorf("checkPasswordPolicy(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestEmailPattern(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"broken", false},
		{"no@dot", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
		{"alice@", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := emailPattern.MatchString(tt.email); got != tt.want {
			t.Errorf("emailPattern.MatchString(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
