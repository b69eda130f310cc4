package core

import "testing"

func TestParseSkin(t *testing.T) {
	tests := []struct {
		in   string
		want Skin
		ok   bool
	}{
		{"skin-gold", SkinGold, true},
		{"gold", SkinGold, true},
		{"neon-blue", SkinNeonBlue, true},
		{"rainbow", SkinDefault, false},
		{"", SkinDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseSkin(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseSkin(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSkinPlayerColor(t *testing.T) {
	if SkinDefault.PlayerColor(Player1) == SkinDefault.PlayerColor(Player2) {
		t.Error("default skin should keep players distinguishable")
	}
	if SkinGold.PlayerColor(Player1) != SkinGold.PlayerColor(Player2) {
		t.Error("a chosen skin applies to both players")
	}
	if SkinMatrix.Name() != "matrix" {
		t.Errorf("Name() = %q, expected matrix", SkinMatrix.Name())
	}
}
