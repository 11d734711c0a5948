package model

import "testing"

func TestUnexportName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Title", "title"},
		{"URL", "url"},
		{"JSONData", "jsonData"},
		{"HTTPClient", "httpClient"},
		{"ID", "id"},
		{"Type", "type_"},
		{"Range", "range_"},
		{"already", "already"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := unexportName(tc.in); got != tc.want {
			t.Errorf("unexportName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExportName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"title", "Title"},
		{"Title", "Title"},
		{"url", "Url"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := exportName(tc.in); got != tc.want {
			t.Errorf("exportName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	valid := []string{"arg", "Arg", "arg2", "_private", "x"}
	invalid := []string{"", "2arg", "two words", "for", "arg-name"}

	for _, name := range valid {
		if !isIdentifier(name) {
			t.Errorf("expected %q to be a valid identifier", name)
		}
	}
	for _, name := range invalid {
		if isIdentifier(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
