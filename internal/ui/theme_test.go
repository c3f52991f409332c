package ui

import "testing"

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	th := GetTheme("NoSuchTheme")
	if th.Name != "Nightfox" {
		t.Fatalf("Name = %q, want Nightfox", th.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	if len(seen) != len(themeOrder) {
		t.Fatalf("visited %d themes, want %d", len(seen), len(themeOrder))
	}
}

func TestNextTheme_UnknownStartsAtFirst(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != themeOrder[0] {
		t.Fatalf("NextTheme = %q, want %q", got, themeOrder[0])
	}
}

func TestThemeNames_MatchesRegistry(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := themes[name]; !ok {
			t.Fatalf("theme %q listed but not registered", name)
		}
	}
}
