// Package sections models the typed section blocks a page document is
// composed of and renders them in order.
package sections

import (
	"encoding/json"
	"fmt"
)

// Section type discriminants as stored in the content store.
const (
	TypeHero         = "hero"
	TypeWorkShowcase = "workShowcase"
	TypeHowItWorks   = "howItWorks"
	TypePricing      = "pricing"
	TypeFAQ          = "faq"
	TypeCalendly     = "calendlyWidget"
	TypeTestimonials = "testimonials"
)

// Block is one typed, keyed unit of page content.
type Block interface {
	BlockType() string
	BlockKey() string
}

// Every payload field is optional at the data-model level; defaults are
// supplied at the render boundary, never here.

type HeroSection struct {
	Key              string   `json:"_key"`
	Headline         string   `json:"headline,omitempty"`
	HighlightedWords []string `json:"highlightedWords,omitempty"`
	Subheadline      string   `json:"subheadline,omitempty"`
	CTAPrimary       string   `json:"ctaPrimary,omitempty"`
	CTAPrimaryLink   string   `json:"ctaPrimaryLink,omitempty"`
	CTASecondary     string   `json:"ctaSecondary,omitempty"`
	CTASecondaryLink string   `json:"ctaSecondaryLink,omitempty"`
	VideoLabel       string   `json:"videoLabel,omitempty"`
	VideoTitle       string   `json:"videoTitle,omitempty"`
	VideoURL         string   `json:"videoUrl,omitempty"`
}

type WorkItem struct {
	Key      string   `json:"_key"`
	Title    string   `json:"title,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Image    string   `json:"image,omitempty"`
	VideoURL string   `json:"videoUrl,omitempty"`
	Link     string   `json:"link,omitempty"`
}

type WorkShowcaseSection struct {
	Key             string     `json:"_key"`
	Title           string     `json:"title,omitempty"`
	HighlightedWord string     `json:"highlightedWord,omitempty"`
	Description     string     `json:"description,omitempty"`
	Items           []WorkItem `json:"items,omitempty"`
}

type Step struct {
	Key         string `json:"_key"`
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type HowItWorksSection struct {
	Key             string `json:"_key"`
	Label           string `json:"label,omitempty"`
	Title           string `json:"title,omitempty"`
	HighlightedWord string `json:"highlightedWord,omitempty"`
	Steps           []Step `json:"steps,omitempty"`
}

type PricingPlan struct {
	Key         string   `json:"_key"`
	Name        string   `json:"name,omitempty"`
	Price       string   `json:"price,omitempty"`
	Period      string   `json:"period,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
}

type PricingSection struct {
	Key             string        `json:"_key"`
	Label           string        `json:"label,omitempty"`
	Title           string        `json:"title,omitempty"`
	HighlightedWord string        `json:"highlightedWord,omitempty"`
	Subtitle        string        `json:"subtitle,omitempty"`
	Plans           []PricingPlan `json:"plans,omitempty"`
}

type FAQItem struct {
	Key      string `json:"_key"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

type FAQSection struct {
	Key             string    `json:"_key"`
	Label           string    `json:"label,omitempty"`
	Title           string    `json:"title,omitempty"`
	HighlightedWord string    `json:"highlightedWord,omitempty"`
	Items           []FAQItem `json:"items,omitempty"`
}

type CalendlySection struct {
	Key             string `json:"_key"`
	Title           string `json:"title,omitempty"`
	HighlightedWord string `json:"highlightedWord,omitempty"`
	Subtitle        string `json:"subtitle,omitempty"`
	CalendlyURL     string `json:"calendlyUrl,omitempty"`
}

type TestimonialsSection struct {
	Key      string `json:"_key"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// UnknownSection marks a block whose _type the renderer does not know.
// It renders nothing; content authors may ship new section types before
// this service learns about them.
type UnknownSection struct {
	Key  string
	Type string
}

func (s HeroSection) BlockType() string         { return TypeHero }
func (s WorkShowcaseSection) BlockType() string { return TypeWorkShowcase }
func (s HowItWorksSection) BlockType() string   { return TypeHowItWorks }
func (s PricingSection) BlockType() string      { return TypePricing }
func (s FAQSection) BlockType() string          { return TypeFAQ }
func (s CalendlySection) BlockType() string     { return TypeCalendly }
func (s TestimonialsSection) BlockType() string { return TypeTestimonials }
func (s UnknownSection) BlockType() string      { return s.Type }

func (s HeroSection) BlockKey() string         { return s.Key }
func (s WorkShowcaseSection) BlockKey() string { return s.Key }
func (s HowItWorksSection) BlockKey() string   { return s.Key }
func (s PricingSection) BlockKey() string      { return s.Key }
func (s FAQSection) BlockKey() string          { return s.Key }
func (s CalendlySection) BlockKey() string     { return s.Key }
func (s TestimonialsSection) BlockKey() string { return s.Key }
func (s UnknownSection) BlockKey() string      { return s.Key }

// BlockList is an ordered list of section blocks. Order is render order.
type BlockList []Block

// UnmarshalJSON decodes a section array, dispatching each element on its
// _type discriminant. Unrecognized types decode to UnknownSection instead
// of failing, so new content store section types never break rendering.
func (l *BlockList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode sections array: %w", err)
	}

	blocks := make(BlockList, 0, len(raw))
	for i, item := range raw {
		var head struct {
			Type string `json:"_type"`
			Key  string `json:"_key"`
		}
		if err := json.Unmarshal(item, &head); err != nil {
			return fmt.Errorf("decode section %d header: %w", i, err)
		}

		block, err := decodeBlock(head.Type, item)
		if err != nil {
			return fmt.Errorf("decode section %d (%s): %w", i, head.Type, err)
		}
		if block == nil {
			block = UnknownSection{Key: head.Key, Type: head.Type}
		}
		blocks = append(blocks, block)
	}

	*l = blocks
	return nil
}

func decodeBlock(blockType string, data []byte) (Block, error) {
	switch blockType {
	case TypeHero:
		var s HeroSection
		err := json.Unmarshal(data, &s)
		return s, err
	case TypeWorkShowcase:
		var s WorkShowcaseSection
		err := json.Unmarshal(data, &s)
		return s, err
	case TypeHowItWorks:
		var s HowItWorksSection
		err := json.Unmarshal(data, &s)
		return s, err
	case TypePricing:
		var s PricingSection
		err := json.Unmarshal(data, &s)
		return s, err
	case TypeFAQ:
		var s FAQSection
		err := json.Unmarshal(data, &s)
		return s, err
	case TypeCalendly:
		var s CalendlySection
		err := json.Unmarshal(data, &s)
		return s, err
	case TypeTestimonials:
		var s TestimonialsSection
		err := json.Unmarshal(data, &s)
		return s, err
	default:
		return nil, nil
	}
}
