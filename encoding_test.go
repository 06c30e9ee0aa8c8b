// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson_test

import (
	"testing"

	"github.com/creachadair/sjson"
)

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		input, quoted string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{"a\"b\\c", `"a\"b\\c"`},
		{"line\nbreak\t", `"line\nbreak\t"`},
		{"\x01", `"\u0001"`},
	}
	for _, tc := range tests {
		got := sjson.Quote(tc.input)
		if got != tc.quoted {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.quoted)
		}
		dec, err := sjson.Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", got, err)
		} else if dec != tc.input {
			t.Errorf("Unquote(%#q): got %q, want %q", got, dec, tc.input)
		}
	}

	for _, bad := range []string{``, `"`, `abc`, `"abc`, `"\x"`, `"\u12"`, `"a" "b"`, ` "a"`, "\"a\nb\""} {
		if got, err := sjson.Unquote(bad); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}
