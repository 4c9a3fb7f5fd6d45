package sections

// Built-in content used when the content store supplies no value for a
// field, and for the fixed fallback composition when a page has no
// sections at all. One merge step per variant; components never fall back
// inline.

var defaultHero = HeroSection{
	Headline:         "Scale Revenue\nWith Impact.",
	HighlightedWords: []string{"Revenue", "Impact"},
	Subheadline:      "We help B2B Brands and Creators grow with organic content and high-performance motion ad creatives.",
	CTAPrimary:       "Book a Strategy Call",
	CTAPrimaryLink:   "#schedule",
	CTASecondary:     "View Work",
	CTASecondaryLink: "#work",
	VideoLabel:       "Showreel 2026",
	VideoTitle:       "Crafting Digital Excellence",
}

var defaultWorkShowcase = WorkShowcaseSection{
	Title:           "Selected",
	HighlightedWord: "Works",
	Description:     "A curated selection of projects that define our approach to digital storytelling and visual excellence.",
	Items: []WorkItem{
		{Key: "work-1", Title: "Luma Interface", Category: "Product Design", Tags: []string{"UI/UX", "Motion"}},
		{Key: "work-2", Title: "Apex Finance", Category: "Brand Identity", Tags: []string{"Branding", "Strategy"}},
		{Key: "work-3", Title: "Nvidia Reveal", Category: "Commercial", Tags: []string{"3D Animation", "VFX"}},
		{Key: "work-4", Title: "Flow State", Category: "Art Direction", Tags: []string{"Concept", "Visuals"}},
	},
}

var defaultHowItWorks = HowItWorksSection{
	Label:           "How It Works",
	Title:           "From Brief to",
	HighlightedWord: "Launch.",
	Steps: []Step{
		{Key: "step-1", ID: "01", Title: "Strategy & Concept", Description: "We align on goals, audience and message, then shape the creative direction before anything goes into production."},
		{Key: "step-2", ID: "02", Title: "Production & Design", Description: "Our team produces, edits and designs every asset in-house, keeping quality and brand consistency tight."},
		{Key: "step-3", ID: "03", Title: "Launch & Optimization", Description: "We ship, measure and iterate, so the work keeps performing after the first delivery."},
	},
}

var defaultPricing = PricingSection{
	Label:           "Pricing",
	Title:           "Plans that",
	HighlightedWord: "Scale.",
	Subtitle:        "Transparent pricing for every stage of growth.",
	Plans: []PricingPlan{
		{
			Key: "plan-starter", Name: "Starter", Price: "$2,500", Period: "/project",
			Description: "For brands that need a focused, high-impact deliverable.",
			Features:    []string{"1 concept direction", "2 rounds of revisions", "Delivery in 2-4 weeks"},
		},
		{
			Key: "plan-growth", Name: "Growth", Price: "$5,000", Period: "/month",
			Description: "Ongoing creative output for teams that ship every week.",
			Features:    []string{"Dedicated creative team", "Unlimited requests", "3 rounds of revisions", "Priority turnaround"},
			Popular:     true,
		},
		{
			Key: "plan-enterprise", Name: "Enterprise", Price: "Custom", Period: "",
			Description: "Custom engagements for larger brands and bigger bets.",
			Features:    []string{"Custom scope & SLAs", "Strategy partnership", "Dedicated account lead"},
		},
	},
}

var defaultFAQ = FAQSection{
	Label:           "Common Questions",
	Title:           "Everything you need to",
	HighlightedWord: "Know.",
	Items: []FAQItem{
		{Key: "faq-1", Question: "What is your typical turnaround time?", Answer: "Our standard turnaround for most projects is 2-4 weeks, depending on complexity. For expedited deliveries, we offer rush options upon request."},
		{Key: "faq-2", Question: "Do you offer revisions?", Answer: "Absolutely. We include 3 rounds of revisions in our standard packages to ensure the final output aligns perfectly with your vision."},
		{Key: "faq-3", Question: "How does the payment structure work?", Answer: "We typically require a 50% deposit to commence work, with the remaining 50% due upon final delivery. We also offer milestone-based payment plans for larger projects."},
		{Key: "faq-4", Question: "Can you help with strategy, not just production?", Answer: "Yes. Strategy is at the core of what we do. We don't just make things look good; we ensure they perform by aligning creative with your business goals."},
		{Key: "faq-5", Question: "What assets do I need to provide?", Answer: "It depends on the project. Generally, we'll need your brand guidelines, logo files, and any specific footage or copy you want included. We can handle the rest."},
	},
}

var defaultCalendly = CalendlySection{
	Title:           "Let's Architect Your Next Phase of",
	HighlightedWord: "Growth.",
	Subtitle:        "Book a strategy call and we'll map out what creative can do for your pipeline.",
	CalendlyURL:     "https://calendly.com/m-faizurrehman-crypto/30min?primary_color=059669&background_color=05180D&text_color=ffffff",
}

var defaultTestimonials = TestimonialsSection{
	Title:    "Trusted by Brands & Creators",
	Subtitle: "See why B2B brands and creators partner with us to grow with organic content and high-performance ad creatives.",
}

// DefaultSequence is the fixed fallback composition rendered when a page
// has no sections: every known section type with built-in content, in the
// same order the original home page shipped them.
func DefaultSequence() BlockList {
	return BlockList{
		withKey(defaultHero, "default-hero"),
		withKey(defaultTestimonials, "default-testimonials"),
		withKey(defaultWorkShowcase, "default-workShowcase"),
		withKey(defaultHowItWorks, "default-howItWorks"),
		withKey(defaultPricing, "default-pricing"),
		withKey(defaultFAQ, "default-faq"),
		withKey(defaultCalendly, "default-calendlyWidget"),
	}
}

func withKey(b Block, key string) Block {
	switch s := b.(type) {
	case HeroSection:
		s.Key = key
		return s
	case WorkShowcaseSection:
		s.Key = key
		return s
	case HowItWorksSection:
		s.Key = key
		return s
	case PricingSection:
		s.Key = key
		return s
	case FAQSection:
		s.Key = key
		return s
	case CalendlySection:
		s.Key = key
		return s
	case TestimonialsSection:
		s.Key = key
		return s
	default:
		return b
	}
}

// WithDefaults returns the section with empty fields filled from the
// built-in content. Item lists are replaced wholesale when absent, never
// merged element-wise.

func (s HeroSection) WithDefaults() HeroSection {
	d := defaultHero
	if s.Headline == "" {
		s.Headline = d.Headline
	}
	if len(s.HighlightedWords) == 0 {
		s.HighlightedWords = d.HighlightedWords
	}
	if s.Subheadline == "" {
		s.Subheadline = d.Subheadline
	}
	if s.CTAPrimary == "" {
		s.CTAPrimary = d.CTAPrimary
	}
	if s.CTAPrimaryLink == "" {
		s.CTAPrimaryLink = d.CTAPrimaryLink
	}
	if s.CTASecondary == "" {
		s.CTASecondary = d.CTASecondary
	}
	if s.CTASecondaryLink == "" {
		s.CTASecondaryLink = d.CTASecondaryLink
	}
	if s.VideoLabel == "" {
		s.VideoLabel = d.VideoLabel
	}
	if s.VideoTitle == "" {
		s.VideoTitle = d.VideoTitle
	}
	return s
}

func (s WorkShowcaseSection) WithDefaults() WorkShowcaseSection {
	d := defaultWorkShowcase
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.HighlightedWord == "" {
		s.HighlightedWord = d.HighlightedWord
	}
	if s.Description == "" {
		s.Description = d.Description
	}
	if len(s.Items) == 0 {
		s.Items = d.Items
	}
	return s
}

func (s HowItWorksSection) WithDefaults() HowItWorksSection {
	d := defaultHowItWorks
	if s.Label == "" {
		s.Label = d.Label
	}
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.HighlightedWord == "" {
		s.HighlightedWord = d.HighlightedWord
	}
	if len(s.Steps) == 0 {
		s.Steps = d.Steps
	}
	return s
}

func (s PricingSection) WithDefaults() PricingSection {
	d := defaultPricing
	if s.Label == "" {
		s.Label = d.Label
	}
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.HighlightedWord == "" {
		s.HighlightedWord = d.HighlightedWord
	}
	if s.Subtitle == "" {
		s.Subtitle = d.Subtitle
	}
	if len(s.Plans) == 0 {
		s.Plans = d.Plans
	}
	return s
}

func (s FAQSection) WithDefaults() FAQSection {
	d := defaultFAQ
	if s.Label == "" {
		s.Label = d.Label
	}
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.HighlightedWord == "" {
		s.HighlightedWord = d.HighlightedWord
	}
	if len(s.Items) == 0 {
		s.Items = d.Items
	}
	// Authored items with no question render nothing useful; drop them.
	items := make([]FAQItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Question != "" {
			items = append(items, item)
		}
	}
	s.Items = items
	return s
}

func (s CalendlySection) WithDefaults() CalendlySection {
	d := defaultCalendly
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.HighlightedWord == "" {
		s.HighlightedWord = d.HighlightedWord
	}
	if s.Subtitle == "" {
		s.Subtitle = d.Subtitle
	}
	if s.CalendlyURL == "" {
		s.CalendlyURL = d.CalendlyURL
	}
	return s
}

func (s TestimonialsSection) WithDefaults() TestimonialsSection {
	d := defaultTestimonials
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.Subtitle == "" {
		s.Subtitle = d.Subtitle
	}
	return s
}
