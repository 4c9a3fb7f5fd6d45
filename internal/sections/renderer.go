package sections

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/common/metrics"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer dispatches section blocks to their HTML templates, in input
// order. Content store strings are sanitized before they reach markup.
type Renderer struct {
	tmpl   *template.Template
	logger logger.Logger
}

func NewRenderer(log logger.Logger) (*Renderer, error) {
	strict := bluemonday.StrictPolicy()
	rich := bluemonday.UGCPolicy()

	funcs := template.FuncMap{
		// clean strips all markup from a store-supplied string.
		"clean": func(s string) template.HTML {
			return template.HTML(strict.Sanitize(s))
		},
		// rich keeps basic user-generated formatting (FAQ answers).
		"rich": func(s string) template.HTML {
			return template.HTML(rich.Sanitize(s))
		},
		"lines": func(s string) []string {
			return strings.Split(s, "\n")
		},
	}

	tmpl, err := template.New("sections").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse section templates: %w", err)
	}

	return &Renderer{
		tmpl:   tmpl,
		logger: log.WithFields(map[string]interface{}{"component": "sectionRenderer"}),
	}, nil
}

// Render writes every block to w in list order. A nil or empty list
// renders the fixed default composition; unknown block types render
// nothing. No reordering, filtering or deduplication happens here.
func (r *Renderer) Render(w io.Writer, blocks BlockList) error {
	if len(blocks) == 0 {
		blocks = DefaultSequence()
	}

	for _, block := range blocks {
		if err := r.renderBlock(w, block); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderBlock(w io.Writer, block Block) error {
	switch s := block.(type) {
	case HeroSection:
		return r.execute(w, TypeHero, s.WithDefaults())
	case TestimonialsSection:
		return r.execute(w, TypeTestimonials, s.WithDefaults())
	case WorkShowcaseSection:
		return r.execute(w, TypeWorkShowcase, s.WithDefaults())
	case HowItWorksSection:
		return r.execute(w, TypeHowItWorks, s.WithDefaults())
	case PricingSection:
		return r.execute(w, TypePricing, s.WithDefaults())
	case FAQSection:
		return r.execute(w, TypeFAQ, s.WithDefaults())
	case CalendlySection:
		return r.execute(w, TypeCalendly, s.WithDefaults())
	default:
		// Forward-compatible: new store section types are skipped, not errors.
		metrics.SectionsSkipped.Inc()
		r.logger.Debug("skipping unknown section type", map[string]interface{}{
			"sectionType": block.BlockType(),
			"sectionKey":  block.BlockKey(),
		})
		return nil
	}
}

func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render section %s: %w", name, err)
	}
	metrics.SectionRenders.WithLabelValues(name).Inc()
	return nil
}

// RenderPage wraps the rendered section sequence in the site layout.
func (r *Renderer) RenderPage(w io.Writer, title string, blocks BlockList) error {
	var body bytes.Buffer
	if err := r.Render(&body, blocks); err != nil {
		return err
	}

	data := struct {
		Title    string
		Sections template.HTML
	}{
		Title:    title,
		Sections: template.HTML(body.String()),
	}
	return r.tmpl.ExecuteTemplate(w, "layout", data)
}
