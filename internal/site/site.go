// Package site describes the client-side behavior of the portfolio page as
// data: loader timings, scroll reveal animations, particle backgrounds and
// image loading hints. The page script reads it from /api/site-config.
package site

import "time"

// Loader drives the letter-by-letter name animation on the loading screen.
type Loader struct {
	Selector       string  `json:"selector"`
	Duration       float64 `json:"duration"`
	Stagger        float64 `json:"stagger"`
	FadeOut        float64 `json:"fadeOut"`
	FadeOutDelay   float64 `json:"fadeOutDelay"`
	HighlightColor string  `json:"highlightColor"`
	DimColor       string  `json:"dimColor"`
}

// Reveal is one scroll-triggered entrance animation.
type Reveal struct {
	Selector string `json:"selector"`
	// Trigger defaults to the element itself when empty.
	Trigger       string  `json:"trigger,omitempty"`
	Start         string  `json:"start,omitempty"`
	ToggleActions string  `json:"toggleActions,omitempty"`
	X             float64 `json:"x,omitempty"`
	Y             float64 `json:"y,omitempty"`
	Duration      float64 `json:"duration"`
	Delay         float64 `json:"delay,omitempty"`
	// Stagger adds index*Stagger seconds of delay per matched element.
	Stagger float64 `json:"stagger,omitempty"`
	Ease    string  `json:"ease,omitempty"`
	// OnLoad reveals play immediately instead of on scroll.
	OnLoad bool `json:"onLoad,omitempty"`
}

// Feedback holds contact form timings in milliseconds.
type Feedback struct {
	DebounceMS    int `json:"debounceMs"`
	ErrorMS       int `json:"errorMs"`
	SuccessMS     int `json:"successMs"`
	FormMessageMS int `json:"formMessageMs"`
	// ResumeResetMS re-arms the animated download button.
	ResumeResetMS int `json:"resumeResetMs"`
}

// Config is the full bundle served to the page.
type Config struct {
	Loader          Loader              `json:"loader"`
	Reveals         []Reveal            `json:"reveals"`
	Particles       map[string]Particle `json:"particles"`
	Preload         []string            `json:"preload"`
	LazySelector    string              `json:"lazySelector"`
	BackToTopOffset int                 `json:"backToTopOffset"`
	Feedback        Feedback            `json:"feedback"`
}

const (
	easeOut      = "power3.out"
	start80      = "top 80%"
	start85      = "top 85%"
	playReset    = "play none none reset"
	playReverse  = "play none none reverse"
	playOnce     = "play none none none"
	resumeResets = 4 * time.Second
)

// Default returns the configuration the portfolio ships with.
func Default() Config {
	return Config{
		Loader: Loader{
			Selector:       "#name-loader span",
			Duration:       1.2,
			Stagger:        0.15,
			FadeOut:        1,
			FadeOutDelay:   0.5,
			HighlightColor: "#ffffff",
			DimColor:       "rgba(255,255,255,0.1)",
		},
		Reveals: []Reveal{
			{Selector: ".hero-left", X: -50, Duration: 1.2, Ease: easeOut, OnLoad: true},
			{Selector: ".hero-right", X: 50, Duration: 1.2, Delay: 0.3, Ease: easeOut, OnLoad: true},
			{Selector: ".journey-card", Start: start85, ToggleActions: playReverse, Y: 80, Duration: 0.4, Stagger: 0.1, Ease: easeOut},
			{Selector: ".fade-in", Start: start85, ToggleActions: playOnce, Y: 40, Duration: 1.2, Ease: easeOut},
			{Selector: ".project-card", Trigger: ".project-card", Start: start85, ToggleActions: playReset, Y: 60, Duration: 1, Ease: easeOut},
			{Selector: "#about-img", Start: start80, ToggleActions: playReset, X: -100, Duration: 0.4, Ease: easeOut},
			{Selector: "#about-text", Start: start80, ToggleActions: playReset, Y: 50, Duration: 0.4, Delay: 0.2, Ease: easeOut},
			{Selector: "#techstack h2", Trigger: "#techstack", Start: start80, ToggleActions: playReset, Y: -40, Duration: 1.2, Ease: easeOut},
			{Selector: "#techstack .group", Start: start85, ToggleActions: playReset, Y: 50, Duration: 1, Stagger: 0.1, Ease: easeOut},
			{Selector: ".tech-category", Start: start80, ToggleActions: playReverse, Y: 60, Duration: 0.8, Ease: easeOut},
			{Selector: ".reveal-section", Start: start80, ToggleActions: playReset, Y: 60, Duration: 1},
			{Selector: ".upcoming-card", Trigger: "#upcoming-projects", Start: start85, ToggleActions: playReset, Y: 60, Duration: 1, Stagger: 0.15, Ease: easeOut},
		},
		Particles: map[string]Particle{
			"particles-hero":     HeroParticles(),
			"particles-projects": ProjectParticles(),
		},
		Preload: []string{
			"/images/portrait.jpg",
			"/images/cursor.png",
		},
		LazySelector:    "img[data-src]",
		BackToTopOffset: 300,
		Feedback: Feedback{
			DebounceMS:    500,
			ErrorMS:       2500,
			SuccessMS:     1500,
			FormMessageMS: 8000,
			ResumeResetMS: int(resumeResets / time.Millisecond),
		},
	}
}
