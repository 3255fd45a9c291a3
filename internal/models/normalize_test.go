package models

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Flamengo", "flamengo"},
		{"  flamengo ", "flamengo"},
		{"FLAMENGO", "flamengo"},
		{"São Paulo", "sao paulo"},
		{"Atlético   Mineiro", "atletico mineiro"},
		{"Grêmio", "gremio"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeNameCollisions(t *testing.T) {
	// All of these must normalize to the same key so the unique index
	// catches them as duplicates.
	variants := []string{"Flamengo", "flamengo", " FLAMENGO ", "Flámengo"}
	want := NormalizeName(variants[0])
	for _, v := range variants[1:] {
		if got := NormalizeName(v); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", v, got, want)
		}
	}
}
