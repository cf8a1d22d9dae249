// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	pongo2 "github.com/flosch/pongo2/v5"

	"github.com/katalvlaran/linsolve/form"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
)

// DefaultTemplate renders a solved system as one unknown per line, or the
// failure message.
const DefaultTemplate = `{% if ok %}solution ({{ n }} unknowns):
{% for v in solution %}  x{{ forloop.Counter }} = {{ v|safe }}
{% endfor %}max |A·x - b| = {{ residual|safe }}
{% else %}error: {{ message|safe }}
{% endif %}`

// Renderer owns a pongo2 template set; templates compiled from it share
// its configuration.
type Renderer struct {
	set *pongo2.TemplateSet
}

// Template is a compiled report template.
type Template struct {
	engine *pongo2.Template
}

// NewRenderer returns a renderer backed by a fresh template set.
func NewRenderer() *Renderer {
	return &Renderer{set: pongo2.NewSet("linsolve", pongo2.DefaultLoader)}
}

// FromString compiles tpl.
func (r *Renderer) FromString(tpl string) (*Template, error) {
	t, err := r.set.FromString(tpl)
	if err != nil {
		return nil, fmt.Errorf("report: compile template: %w", err)
	}

	return &Template{engine: t}, nil
}

// Default compiles DefaultTemplate.
func (r *Renderer) Default() (*Template, error) { return r.FromString(DefaultTemplate) }

// Render executes the template against o.
//
// Context keys:
//   - ok (bool), message (string), text (String() of the solution or the message),
//   - n (unknowns), solution ([]string, matrix.FormatCell), values ([]float64),
//   - residual (string, matrix.FormatCell of max |A·x − b|; empty when unavailable).
func (t *Template) Render(o form.Outcome) (string, error) {
	ctx, err := Context(o)
	if err != nil {
		return "", err
	}
	out, err := t.engine.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("report: render: %w", err)
	}

	return out, nil
}

// Context builds the template variables for o.
func Context(o form.Outcome) (pongo2.Context, error) {
	ctx := pongo2.Context{
		"ok":       o.OK(),
		"message":  form.Message(o.Err),
		"text":     o.Text,
		"n":        0,
		"solution": []string{},
		"values":   []float64{},
		"residual": "",
	}
	if !o.OK() || o.Solution == nil {
		return ctx, nil
	}

	values := flatten(o.Solution)
	formatted := make([]string, len(values))
	for k, v := range values {
		formatted[k] = matrix.FormatCell(v)
	}
	ctx["n"] = len(values)
	ctx["solution"] = formatted
	ctx["values"] = values

	if o.A != nil && o.B != nil {
		r, err := linsys.Residual(o.A, o.Solution, o.B)
		if err != nil {
			return nil, fmt.Errorf("report: residual: %w", err)
		}
		worst := 0.0
		for _, v := range flatten(r) {
			worst = math.Max(worst, math.Abs(v))
		}
		ctx["residual"] = matrix.FormatCell(worst)
	}

	return ctx, nil
}
