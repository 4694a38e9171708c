package metastore

import "testing"

func TestQualifyDatabase(t *testing.T) {
	tests := []struct {
		name     string
		catalog  string
		database string
		want     string
	}{
		{"both set", "spark", "analytics", "@spark#analytics"},
		{"default catalog", "", "analytics", "@hive#analytics"},
		{"empty database", "spark", "", "@spark#!"},
		{"both empty", "", "", "@hive#!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualifyDatabase(tt.catalog, tt.database); got != tt.want {
				t.Errorf("QualifyDatabase(%q, %q) = %q, want %q", tt.catalog, tt.database, got, tt.want)
			}
		})
	}
}

func TestQualifyPattern(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		pattern string
		want    string
	}{
		{"pattern set", "spark", "raw_*", "@spark#raw_*"},
		{"empty pattern stays empty", "spark", "", "@spark#"},
		{"default catalog", "", "*", "@hive#*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualifyPattern(tt.catalog, tt.pattern); got != tt.want {
				t.Errorf("QualifyPattern(%q, %q) = %q, want %q", tt.catalog, tt.pattern, got, tt.want)
			}
		})
	}
}
