package ggart

import "testing"

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"ROTATION IN RED AND BLACK": "rotation_in_red_and_black",
		"Union of Water and Fire II": "union_of_water_and_fire_ii",
		"  --Angry Eyes--  ":         "angry_eyes",
		"6_lattice":                  "6_lattice",
		"":                           "",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"basic-canopy-fractal-1": "Basic Canopy Fractal 1",
		"collatz_textile_3":      "Collatz Textile 3",
		"owl":                    "Owl",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}
