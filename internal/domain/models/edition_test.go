package models

import "testing"

func TestParseEdition(t *testing.T) {
	cases := []struct {
		in      string
		want    Edition
		wantErr bool
	}{
		{"couples", EditionCouples, false},
		{"family", EditionFamily, false},
		{"Couples", EditionCouples, false},
		{"  FAMILY  ", EditionFamily, false},
		{"deluxe", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseEdition(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseEdition(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEdition(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseEdition(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseIcon(t *testing.T) {
	for _, icon := range Icons() {
		if _, err := ParseIcon(string(icon)); err != nil {
			t.Errorf("ParseIcon(%q): %v", icon, err)
		}
	}

	// Icon tags key client assets, so casing matters.
	for _, in := range []string{"getwet", "GetWet", "planahead", "campfire", ""} {
		if got, err := ParseIcon(in); err == nil {
			t.Errorf("ParseIcon(%q): expected error, got %q", in, got)
		}
	}
}

func TestOwnsEdition(t *testing.T) {
	u := User{Editions: []Edition{EditionCouples}}
	if !u.OwnsEdition(EditionCouples) {
		t.Error("expected couples to be owned")
	}
	if u.OwnsEdition(EditionFamily) {
		t.Error("expected family to not be owned")
	}
	var zero User
	if zero.OwnsEdition(EditionCouples) {
		t.Error("expected empty user to own nothing")
	}
}
