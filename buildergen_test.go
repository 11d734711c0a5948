package buildergen_test

import (
	"context"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	buildergen "github.com/goliatone/go-buildergen"
)

const fixture = `package orders

type Order struct {
	ID    string
	Note  *string
	Items []string ` + "`builder:\"each=item\"`" + `
}
`

func TestGenerate(t *testing.T) {
	out, err := buildergen.Generate(context.Background(), buildergen.SourceFromString("orders.go", fixture), "Order", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	source := string(out)
	for _, want := range []string{
		"package orders",
		"func (Order) Builder() *OrderBuilder {",
		"func (b *OrderBuilder) Item(v string) *OrderBuilder {",
		"type OrderBuilderError struct{}",
	} {
		if !strings.Contains(source, want) {
			t.Fatalf("expected %q in output:\n%s", want, source)
		}
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "order_builder.go", source, parser.ParseComments); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
}

func TestGenerate_TypeNotFound(t *testing.T) {
	_, err := buildergen.Generate(context.Background(), buildergen.SourceFromString("orders.go", fixture), "Missing", "")
	if err == nil || !strings.Contains(err.Error(), `"Missing" not found`) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestGenerate_WithConfig(t *testing.T) {
	cfg := buildergen.Config{
		TagKey:            "builder",
		Suffix:            "Maker",
		ConstructorPrefix: "New",
		DefaultEmitter:    "gofile",
		OutputSuffix:      "_builder.go",
	}

	out, err := buildergen.Generate(context.Background(), buildergen.SourceFromString("orders.go", fixture), "Order", "", buildergen.WithConfig(cfg))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "type OrderMaker struct {") {
		t.Fatalf("expected OrderMaker in output:\n%s", out)
	}
}
