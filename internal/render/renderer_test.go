package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPongo2Renderer_Render(t *testing.T) {
	r := NewPongo2Renderer()
	ctx := Context{"project_name": "myapp"}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"variable", "Hello, {{ project_name }}!", "Hello, myapp!"},
		{"plain text untouched", "Hello, project_name!", "Hello, project_name!"},
		{"trailing newline dropped", "name = {{ project_name }}\n", "name = myapp"},
		{"only one trailing newline dropped", "{{ project_name }}\n\n", "myapp\n"},
		{"no autoescape", "<{{ project_name }}> & co", "<myapp> & co"},
		{"camel filter", "{{ project_name|camel }}", "Myapp"},
		{"screaming snake filter", "{{ project_name|screaming_snake }}", "MYAPP"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.text, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPongo2Renderer_CaseFilters(t *testing.T) {
	r := NewPongo2Renderer()
	ctx := Context{"project_name": "my_app"}

	got, err := r.Render("{{ project_name|camel }} {{ project_name|lower_camel }} {{ project_name|kebab }} {{ project_name|snake }}", ctx)
	require.NoError(t, err)
	assert.Equal(t, "MyApp myApp my-app my_app", got)
}

func TestPongo2Renderer_SyntaxError(t *testing.T) {
	r := NewPongo2Renderer()

	_, err := r.Render("{% if project_name %}unterminated", Context{"project_name": "x"})
	assert.Error(t, err)
}
