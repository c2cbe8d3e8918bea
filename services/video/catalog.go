package video

import (
	"math/rand/v2"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const GeneralSubject = "general"

type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Picker returns an index in [0, n).
type Picker func(n int) int

var defaultPools = map[string][]Video{
	"math": {
		{Title: "Understanding Fractions", URL: "https://www.youtube.com/embed/4lkq3D4XNVw"},
		{Title: "Multiply Like a Pro", URL: "https://www.youtube.com/embed/CFb-0-7D8oE"},
		{Title: "Geometry Basics", URL: "https://www.youtube.com/embed/6hG8h7WZ8v8"},
	},
	"science": {
		{Title: "The Water Cycle", URL: "https://www.youtube.com/embed/al-do-HGuIk"},
		{Title: "Solar System Tour", URL: "https://www.youtube.com/embed/libKVRa01L8"},
		{Title: "Plant Life Explained", URL: "https://www.youtube.com/embed/ql6OL7_qFgU"},
	},
	GeneralSubject: {
		{Title: "Learn with Kiddy", URL: "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{Title: "Study Superpowers", URL: "https://www.youtube.com/embed/2L1J4w0Qh1U"},
		{Title: "Creative Thinking", URL: "https://www.youtube.com/embed/1bq0qff4iF8"},
	},
}

// Catalog is read-only after construction and safe for concurrent use
// as long as its Picker is.
type Catalog struct {
	pools  map[string][]Video
	picker Picker
}

type Option func(*Catalog)

func WithPicker(p Picker) Option {
	return func(c *Catalog) {
		c.picker = p
	}
}

func WithPools(pools map[string][]Video) Option {
	return func(c *Catalog) {
		c.pools = pools
	}
}

func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		pools:  defaultPools,
		picker: rand.IntN,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Normalize lower-cases subject, empty subjects become GeneralSubject.
func (s *Catalog) Normalize(subject string) string {
	if subject == "" {
		return GeneralSubject
	}
	// cases.Caser keeps state and is not safe for concurrent use
	return cases.Lower(language.Und).String(subject)
}

// Pool resolves the pool for subject, falling back to the general pool.
func (s *Catalog) Pool(subject string) []Video {
	if p, ok := s.pools[s.Normalize(subject)]; ok && len(p) > 0 {
		return p
	}
	return s.pools[GeneralSubject]
}

// Pick selects one video for subject.
func (s *Catalog) Pick(subject string) Video {
	pool := s.Pool(subject)
	if len(pool) == 0 {
		return Video{}
	}
	i := s.picker(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}
