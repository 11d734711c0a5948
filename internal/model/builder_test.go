package model_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-buildergen/internal/gosource/parser"
	"github.com/goliatone/go-buildergen/internal/model"
	"github.com/goliatone/go-buildergen/pkg/diag"
	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
)

func declarations(t *testing.T, raw string) map[string]pkggosource.Declaration {
	t.Helper()

	doc := pkggosource.MustNewDocument(pkggosource.SourceFromString("fixture.go", raw), []byte(raw))
	decls, err := parser.New(pkggosource.NewParserOptions()).Declarations(context.Background(), doc)
	if err != nil {
		t.Fatalf("declarations: %v", err)
	}
	return decls
}

func declaration(t *testing.T, raw, name string) pkggosource.Declaration {
	t.Helper()

	decl, ok := declarations(t, raw)[name]
	if !ok {
		t.Fatalf("fixture does not declare %q", name)
	}
	return decl
}

func TestBuilder_ClassifiesBySyntacticShape(t *testing.T) {
	raw := `package sample

import "time"

type Args []string

type Task struct {
	Title    string
	Deadline *time.Time
	Labels   []string
	Buffer   [4]byte
	Extra    Args
	Matrix   [][]int
}
`

	record, err := model.New(model.Options{}).Build(declaration(t, raw, "Task"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []struct {
		name string
		kind model.Kind
		typ  string
		elem string
	}{
		{"Title", model.KindRequired, "string", "string"},
		{"Deadline", model.KindOptional, "*time.Time", "time.Time"},
		{"Labels", model.KindRepeated, "[]string", "string"},
		{"Buffer", model.KindRequired, "[4]byte", "[4]byte"},
		// Named types are never resolved, so Args stays Required even
		// though it aliases a slice.
		{"Extra", model.KindRequired, "Args", "Args"},
		{"Matrix", model.KindRepeated, "[][]int", "[]int"},
	}

	if len(record.Members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(record.Members))
	}
	for i, w := range want {
		m := record.Members[i]
		if m.Name != w.name || m.Kind != w.kind || m.Type != w.typ || m.Elem != w.elem {
			t.Errorf("member %d: got {%s %s %s %s}, want {%s %s %s %s}",
				i, m.Name, m.Kind, m.Type, m.Elem, w.name, w.kind, w.typ, w.elem)
		}
		if !m.HasSetter {
			t.Errorf("member %s: expected a setter", m.Name)
		}
	}
	if len(record.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", record.Diagnostics)
	}
	if record.HasAppenders() {
		t.Fatal("expected no appenders without directives")
	}
}

func TestBuilder_EachDirectiveAddsAppender(t *testing.T) {
	raw := "package sample\n\ntype Command struct {\n\tArgs []string `builder:\"each=arg\"`\n}\n"

	record, err := model.New(model.Options{}).Build(declaration(t, raw, "Command"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	m := record.Members[0]
	if m.Append != "Arg" {
		t.Fatalf("expected appender Arg, got %q", m.Append)
	}
	if !m.HasSetter {
		t.Fatal("expected bulk setter to survive a distinct appender name")
	}
	if !record.HasAppenders() {
		t.Fatal("expected the record to report its appender")
	}
	if len(record.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", record.Diagnostics)
	}
}

func TestBuilder_EachMatchingFieldNameSuppressesSetter(t *testing.T) {
	raw := "package sample\n\ntype Report struct {\n\tNotes []string `builder:\"each=notes\"`\n}\n"

	record, err := model.New(model.Options{}).Build(declaration(t, raw, "Report"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	m := record.Members[0]
	if m.Append != "Notes" {
		t.Fatalf("expected appender Notes, got %q", m.Append)
	}
	if m.HasSetter {
		t.Fatal("expected the bulk setter to be suppressed")
	}
}

func TestBuilder_DirectiveProblemsDegradeToDiagnostics(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		severity diag.Severity
		fragment string
	}{
		{
			name:     "unrecognized key",
			raw:      "package sample\n\ntype T struct {\n\tArgs []string `builder:\"min=3\"`\n}\n",
			severity: diag.SeverityWarning,
			fragment: "unrecognized builder tag",
		},
		{
			name:     "each on non-slice",
			raw:      "package sample\n\ntype T struct {\n\tName string `builder:\"each=n\"`\n}\n",
			severity: diag.SeverityError,
			fragment: "requires a slice type",
		},
		{
			name:     "invalid appender name",
			raw:      "package sample\n\ntype T struct {\n\tArgs []string `builder:\"each=two words\"`\n}\n",
			severity: diag.SeverityError,
			fragment: "not a valid identifier",
		},
		{
			name:     "empty appender name",
			raw:      "package sample\n\ntype T struct {\n\tArgs []string `builder:\"each=\"`\n}\n",
			severity: diag.SeverityError,
			fragment: "not a valid identifier",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := model.New(model.Options{}).Build(declaration(t, tc.raw, "T"))
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if len(record.Diagnostics) != 1 {
				t.Fatalf("expected 1 diagnostic, got %d", len(record.Diagnostics))
			}
			d := record.Diagnostics[0]
			if d.Severity != tc.severity {
				t.Fatalf("expected severity %s, got %s", tc.severity, d.Severity)
			}
			if !strings.Contains(d.Message, tc.fragment) {
				t.Fatalf("expected message to contain %q, got %q", tc.fragment, d.Message)
			}
			if !strings.HasPrefix(d.Pos, "fixture.go:") {
				t.Fatalf("expected diagnostic position in fixture.go, got %q", d.Pos)
			}
			if m := record.Members[0]; m.Append != "" || !m.HasSetter {
				t.Fatalf("expected directive to be ignored, got %+v", m)
			}
		})
	}
}

func TestBuilder_HonoursCustomTagKey(t *testing.T) {
	raw := "package sample\n\ntype T struct {\n\tArgs []string `gen:\"each=arg\"`\n}\n"

	record, err := model.New(model.Options{TagKey: "gen"}).Build(declaration(t, raw, "T"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if record.Members[0].Append != "Arg" {
		t.Fatalf("expected appender Arg, got %q", record.Members[0].Append)
	}
}

func TestBuilder_KeepsOnlyReferencedImports(t *testing.T) {
	raw := `package sample

import (
	"fmt"
	"time"

	custom "example.com/lib/v2"
)

type Event struct {
	At      time.Time
	Payload custom.Payload
}

var _ = fmt.Sprintf
`

	record, err := model.New(model.Options{}).Build(declaration(t, raw, "Event"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []model.Import{
		{Name: "custom", Path: "example.com/lib/v2"},
		{Path: "time"},
	}
	if diff := cmp.Diff(want, record.Imports); diff != "" {
		t.Fatalf("imports mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_RejectsCaseCollidingFields(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{
			name: "first rune case",
			raw:  "package sample\n\ntype T struct {\n\tTitle string\n\ttitle string\n}\n",
		},
		{
			name: "leading run case",
			raw:  "package sample\n\ntype T struct {\n\tURL string\n\tUrl string\n}\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.New(model.Options{}).Build(declaration(t, tc.raw, "T"))
			if err == nil || !strings.Contains(err.Error(), "collide") {
				t.Fatalf("expected collision error, got %v", err)
			}
		})
	}
}

func TestBuilder_AppenderCollisionDegradesToDiagnostic(t *testing.T) {
	raw := "package sample\n\ntype T struct {\n\tArg  string\n\tArgs []string `builder:\"each=arg\"`\n}\n"

	record, err := model.New(model.Options{}).Build(declaration(t, raw, "T"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(record.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(record.Diagnostics), record.Diagnostics)
	}
	d := record.Diagnostics[0]
	if d.Severity != diag.SeverityError {
		t.Fatalf("expected error severity, got %s", d.Severity)
	}
	if !strings.Contains(d.Message, "already the method for Arg") {
		t.Fatalf("unexpected message %q", d.Message)
	}

	args := record.Members[1]
	if args.Append != "" || !args.HasSetter {
		t.Fatalf("expected directive to be dropped and bulk setter restored, got %+v", args)
	}
}

func TestBuilder_DuplicateAppenderNamesKeepOnlyTheFirst(t *testing.T) {
	raw := "package sample\n\ntype T struct {\n\tTags   []string `builder:\"each=add\"`\n\tLabels []string `builder:\"each=add\"`\n}\n"

	record, err := model.New(model.Options{}).Build(declaration(t, raw, "T"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if record.Members[0].Append != "Add" {
		t.Fatalf("expected first directive to survive, got %+v", record.Members[0])
	}
	if record.Members[1].Append != "" || !record.Members[1].HasSetter {
		t.Fatalf("expected second directive to be dropped, got %+v", record.Members[1])
	}
	if len(record.Diagnostics) != 1 || record.Diagnostics[0].Severity != diag.SeverityError {
		t.Fatalf("expected one error diagnostic, got %v", record.Diagnostics)
	}
}

func TestBuilder_RejectsNonStructDeclarations(t *testing.T) {
	raw := "package sample\n\ntype Runner interface{ Run() error }\n\ntype Seconds int\n"

	decls := declarations(t, raw)
	for _, name := range []string{"Runner", "Seconds"} {
		_, err := model.New(model.Options{}).Build(decls[name])
		if err == nil {
			t.Fatalf("expected structural error for %s", name)
		}
		if !strings.Contains(err.Error(), "require a struct") {
			t.Fatalf("unexpected error for %s: %v", name, err)
		}
	}
}

func TestBuilder_RejectsEmbeddedFields(t *testing.T) {
	raw := "package sample\n\ntype Base struct{ A int }\n\ntype T struct {\n\tBase\n\tB int\n}\n"

	_, err := model.New(model.Options{}).Build(declaration(t, raw, "T"))
	if err == nil || !strings.Contains(err.Error(), "embeds Base") {
		t.Fatalf("expected embedded-field error, got %v", err)
	}
}
