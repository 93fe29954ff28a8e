package render

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/iancoleman/strcase"
)

// Context holds the variables available to a rendered template.
type Context map[string]any

// Renderer renders template text with a context.
type Renderer interface {
	// Render applies ctx to the template text and returns the result.
	Render(text string, ctx Context) (string, error)
}

func init() {
	// Templates produce source code, not HTML.
	pongo2.SetAutoescape(false)

	filters := map[string]func(string) string{
		"camel":           strcase.ToCamel,
		"lower_camel":     strcase.ToLowerCamel,
		"snake":           strcase.ToSnake,
		"kebab":           strcase.ToKebab,
		"screaming_snake": strcase.ToScreamingSnake,
	}
	for name, fn := range filters {
		if err := pongo2.RegisterFilter(name, caseFilter(fn)); err != nil {
			panic(fmt.Sprintf("render: register filter %q: %v", name, err))
		}
	}
}

func caseFilter(fn func(string) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}

// Pongo2Renderer renders Jinja-style templates ({{ project_name }}) with pongo2.
//
// Like Jinja's default, a single trailing newline of the rendered output is
// dropped. Callers that need the source's trailing newline must restore it.
type Pongo2Renderer struct{}

// NewPongo2Renderer creates a new Pongo2Renderer.
func NewPongo2Renderer() *Pongo2Renderer {
	return &Pongo2Renderer{}
}

// Render parses text as a pongo2 template and executes it with ctx.
func (r *Pongo2Renderer) Render(text string, ctx Context) (string, error) {
	tpl, err := pongo2.FromString(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	out, err := tpl.Execute(pongo2.Context(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return strings.TrimSuffix(out, "\n"), nil
}
