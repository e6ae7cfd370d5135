package ui

import (
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")

	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_UnknownThemeFallsBack(t *testing.T) {
	tp := NewThemeProvider("nonexistent-theme-xyz")

	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected fallback to %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for valid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to return false for unknown theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("theme should not change after invalid SetTheme, got %q", tp.CurrentName())
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	themes := NewThemeProvider("").AvailableThemes()

	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}
	found := false
	for i, theme := range themes {
		if i > 0 && theme < themes[i-1] {
			t.Errorf("themes not sorted: %q < %q", theme, themes[i-1])
		}
		if theme == DefaultTheme {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in available themes", DefaultTheme)
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	styles := NewThemeProvider("dracula").Styles()

	if styles.App.GetPaddingTop() == 0 && styles.App.GetPaddingBottom() == 0 {
		t.Error("expected App style to have padding")
	}
}

func TestThemeProvider_CurrentDisplayName(t *testing.T) {
	if NewThemeProvider("dracula").CurrentDisplayName() == "" {
		t.Error("expected non-empty display name")
	}
}
