package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateLink(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://www.themealdb.com/meal/52772", false},
		{"http://www.vahrehvah.com/chicken-handi", false},
		{"  https://www.youtube.com/watch?v=4aZr5hZXP_s  ", false},
		{"", true},
		{"   ", true},
		{"ftp://example.com/file", true},
		{"javascript:alert(1)", true},
		{"/placeholder.svg", true},
		{"https://", true},
	}

	for _, test := range tests {
		u, err := ValidateLink(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ValidateLink(%q) expected error, got %v", test.input, u)
				continue
			}
			if !errors.Is(err, ErrInvalidLink) {
				t.Errorf("ValidateLink(%q) error should wrap ErrInvalidLink, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateLink(%q) unexpected error: %v", test.input, err)
			continue
		}
		if u.String() != strings.TrimSpace(test.input) {
			t.Errorf("ValidateLink(%q) = %s", test.input, u.String())
		}
	}
}

func TestOpenURL_InvalidLink(t *testing.T) {
	err := OpenURL("mailto:chef@example.com")
	if err == nil {
		t.Fatal("Expected error for non-http link, got nil")
	}
	if !errors.Is(err, ErrInvalidLink) {
		t.Errorf("Expected ErrInvalidLink, got %v", err)
	}
}

func TestBrowserCommand(t *testing.T) {
	link := "https://example.com/recipe"

	tests := []struct {
		goos     string
		expected []string
	}{
		{OSDarwin, []string{OpenCommand, link}},
		{OSWindows, []string{CmdCommand, WindowsCmdFlag, StartCommand, "", link}},
		{OSAndroid, []string{AMCommand, StartCommand, "-a", AndroidViewAction, "-d", link}},
	}

	for _, test := range tests {
		cmd, err := browserCommand(test.goos, link)
		if err != nil {
			t.Errorf("browserCommand(%s) unexpected error: %v", test.goos, err)
			continue
		}
		if strings.Join(cmd.Args, "|") != strings.Join(test.expected, "|") {
			t.Errorf("browserCommand(%s) args = %q, expected %q", test.goos, cmd.Args, test.expected)
		}
	}
}

func TestBrowserCommand_UnsupportedOS(t *testing.T) {
	_, err := browserCommand("plan9", "https://example.com")
	if err == nil {
		t.Fatal("Expected error for unsupported OS, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported operating system") {
		t.Errorf("Unexpected error message: %v", err)
	}
}
