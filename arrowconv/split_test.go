package arrowconv

import (
	"reflect"
	"testing"
)

func TestSplitAware(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		delim byte
		max   int
		want  []string
	}{
		{"plain", "a,b,c", ',', -1, []string{"a", "b", "c"}},
		{"angle brackets", "MAP<STRING,INT>,BIGINT", ',', -1, []string{"MAP<STRING,INT>", "BIGINT"}},
		{"nested angle brackets", "ARRAY<MAP<STRING,INT>>,X", ',', -1, []string{"ARRAY<MAP<STRING,INT>>", "X"}},
		{"round brackets", "f(a,b),c", ',', -1, []string{"f(a,b)", "c"}},
		{"quoted delimiter", `"a,b",c`, ',', -1, []string{`"a,b"`, "c"}},
		{"escaped quote", `"a\",b",c`, ',', -1, []string{`"a\",b"`, "c"}},
		{"max one split", "a:b:c", ':', 1, []string{"a", "b:c"}},
		{"max zero", "a,b", ',', 0, []string{"a,b"}},
		{"no delimiter", "abc", ',', -1, []string{"abc"}},
		{"empty parts", "a,,b", ',', -1, []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAware(tt.s, tt.delim, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAware(%q, %q, %d) = %v, want %v", tt.s, tt.delim, tt.max, got, tt.want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"quoted", `"abc"`, "abc"},
		{"unquoted passes through", "abc", "abc"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"single quote char", `"`, `"`},
		{"empty quotes", `""`, ""},
		{"unbalanced", `"abc`, `"abc`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unquote(tt.s); got != tt.want {
				t.Errorf("Unquote(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}
