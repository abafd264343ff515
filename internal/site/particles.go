package site

// Particle mirrors the particles.js configuration object.
type Particle struct {
	Particles     ParticleBody  `json:"particles"`
	Interactivity Interactivity `json:"interactivity"`
	RetinaDetect  bool          `json:"retina_detect"`
}

type ParticleBody struct {
	Number     Number     `json:"number"`
	Color      Value      `json:"color"`
	Shape      *Shape     `json:"shape,omitempty"`
	Opacity    Randomized `json:"opacity"`
	Size       Randomized `json:"size"`
	LineLinked LineLinked `json:"line_linked"`
	Move       Move       `json:"move"`
}

type Number struct {
	Value   int      `json:"value"`
	Density *Density `json:"density,omitempty"`
}

type Density struct {
	Enable    bool `json:"enable"`
	ValueArea int  `json:"value_area"`
}

type Value struct {
	Value string `json:"value"`
}

type Shape struct {
	Type string `json:"type"`
}

type Randomized struct {
	Value  float64 `json:"value"`
	Random bool    `json:"random"`
}

type LineLinked struct {
	Enable   bool    `json:"enable"`
	Distance int     `json:"distance,omitempty"`
	Color    string  `json:"color,omitempty"`
	Opacity  float64 `json:"opacity,omitempty"`
	Width    int     `json:"width,omitempty"`
}

type Move struct {
	Enable    bool    `json:"enable"`
	Speed     float64 `json:"speed"`
	Direction string  `json:"direction"`
	OutMode   string  `json:"out_mode"`
}

type Interactivity struct {
	DetectOn string `json:"detect_on,omitempty"`
	Events   Events `json:"events"`
	Modes    *Modes `json:"modes,omitempty"`
}

type Events struct {
	OnHover Toggle `json:"onhover"`
	OnClick Toggle `json:"onclick"`
}

type Toggle struct {
	Enable bool   `json:"enable"`
	Mode   string `json:"mode,omitempty"`
}

type Modes struct {
	Grab Grab `json:"grab"`
	Push Push `json:"push"`
}

type Grab struct {
	Distance   int `json:"distance"`
	LineLinked struct {
		Opacity float64 `json:"opacity"`
	} `json:"line_linked"`
}

type Push struct {
	ParticlesNb int `json:"particles_nb"`
}

// HeroParticles is the slow white snowfall behind the hero section.
func HeroParticles() Particle {
	return Particle{
		Particles: ParticleBody{
			Number:     Number{Value: 200, Density: &Density{Enable: true, ValueArea: 800}},
			Color:      Value{Value: "#ffffff"},
			Opacity:    Randomized{Value: 0.7},
			Size:       Randomized{Value: 4, Random: true},
			LineLinked: LineLinked{},
			Move:       Move{Enable: true, Speed: 1, Direction: "bottom", OutMode: "out"},
		},
		RetinaDetect: true,
	}
}

// ProjectParticles is the linked, interactive network behind projects.
func ProjectParticles() Particle {
	modes := &Modes{Push: Push{ParticlesNb: 4}}
	modes.Grab.Distance = 140
	modes.Grab.LineLinked.Opacity = 1

	return Particle{
		Particles: ParticleBody{
			Number:     Number{Value: 50},
			Color:      Value{Value: "#ffffff"},
			Shape:      &Shape{Type: "circle"},
			Opacity:    Randomized{Value: 0.5, Random: true},
			Size:       Randomized{Value: 4, Random: true},
			LineLinked: LineLinked{Enable: true, Distance: 150, Color: "#ffffff", Opacity: 0.4, Width: 1},
			Move:       Move{Enable: true, Speed: 3, Direction: "none", OutMode: "out"},
		},
		Interactivity: Interactivity{
			DetectOn: "canvas",
			Events: Events{
				OnHover: Toggle{Enable: true, Mode: "grab"},
				OnClick: Toggle{Enable: true, Mode: "push"},
			},
			Modes: modes,
		},
		RetinaDetect: true,
	}
}
