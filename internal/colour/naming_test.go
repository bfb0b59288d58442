package colour

import (
	"fmt"
	"testing"
)

func TestGenerateNameAchromatic(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", "Snow White"},
		{"#000000", "Ebony"},
		{"#808080", "Slate Gray"},
	}

	for _, tt := range tests {
		used := make(map[string]bool)
		if got := GenerateName(tt.hex, used); got != tt.want {
			t.Errorf("GenerateName(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestGenerateNameSpecialLookup(t *testing.T) {
	// #8A0F24 is HSL(350, 80, 30): Deep Red, replaced by the hue-keyed
	// special pick (350/5 mod 3 = 1 -> Wine).
	used := make(map[string]bool)
	if got := GenerateName("#8A0F24", used); got != "Wine" {
		t.Errorf("GenerateName(#8A0F24) = %q, want Wine", got)
	}
	if !used["Wine"] {
		t.Error("generated name was not registered in the used set")
	}
}

func TestGenerateNameDeterministic(t *testing.T) {
	hexes := []string{"#8A0F24", "#FF5733", "#87CEEB", "#E0C1C1", "#6E8CA0"}

	for _, hex := range hexes {
		a := GenerateName(hex, make(map[string]bool))
		b := GenerateName(hex, make(map[string]bool))
		if a != b {
			t.Errorf("GenerateName(%q) not deterministic: %q vs %q", hex, a, b)
		}
	}
}

func TestGenerateNameCollisionResolution(t *testing.T) {
	used := make(map[string]bool)

	first := GenerateName("#8A0F24", used)
	second := GenerateName("#8A0F24", used)
	if first == second {
		t.Fatalf("collision not resolved: both calls returned %q", first)
	}
	if !used[first] || !used[second] {
		t.Error("resolved names not registered in the used set")
	}

	// Resolution itself must be deterministic given the same prior state.
	usedAgain := map[string]bool{first: true}
	if got := GenerateName("#8A0F24", usedAgain); got != second {
		t.Errorf("collision resolution not deterministic: %q vs %q", got, second)
	}
}

func TestGenerateNameNeverRepeats(t *testing.T) {
	// Hammering the same hex must keep producing fresh names, exercising
	// every variation strategy down to the numeral suffixes.
	used := make(map[string]bool)
	seen := make(map[string]bool)

	for i := 0; i < 40; i++ {
		name := GenerateName("#FF5733", used)
		if seen[name] {
			t.Fatalf("duplicate name %q on iteration %d", name, i)
		}
		seen[name] = true
	}
	if len(used) != 40 {
		t.Errorf("used set has %d entries, want 40", len(used))
	}
}

func TestGenerateNameDistinctAcrossBatch(t *testing.T) {
	// A batch of similar colours sharing a used set must all get unique names.
	used := make(map[string]bool)
	seen := make(map[string]bool)

	for i := 0; i < 30; i++ {
		hex := fmt.Sprintf("#FF%02X33", 0x50+i)
		name := GenerateName(hex, used)
		if name == "" {
			t.Fatalf("empty name for %s", hex)
		}
		if seen[name] {
			t.Fatalf("duplicate name %q for %s", name, hex)
		}
		seen[name] = true
	}
}

func TestHueBaseNameBands(t *testing.T) {
	tests := []struct {
		h    int
		want string
	}{
		{350, "Red"},
		{5, "Cherry"},
		{20, "Crimson"},
		{35, "Orange"},
		{200, "Azure"},
		{215, "Blue"},
		{320, "Pink"},
		{340, "Rose"},
	}

	for _, tt := range tests {
		if got := hueBaseName(tt.h); got != tt.want {
			t.Errorf("hueBaseName(%d) = %q, want %q", tt.h, got, tt.want)
		}
	}
}
