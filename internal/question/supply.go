package question

import (
	"context"
	"log/slog"

	"github.com/mtreece/prepguide/internal/jobdesc"
)

// Supply is the question source the guide builder consumes. It prefers
// AI-generated questions and falls back to the catalog when generation is
// disabled, fails outright, or yields fewer questions than the minimum.
type Supply struct {
	catalog *Catalog
	gen     *Generator
	min     int
	log     *slog.Logger
}

// NewSupply wires a supply. gen may be nil, in which case the catalog is the
// only source. min is the AI yield below which the catalog takes over.
func NewSupply(catalog *Catalog, gen *Generator, min int, log *slog.Logger) *Supply {
	if min <= 0 {
		min = 100
	}
	return &Supply{catalog: catalog, gen: gen, min: min, log: log}
}

// QuestionsFor returns the completed category-to-questions mapping for a job
// description. The mapping is fully resolved before returning; callers never
// observe partial results.
func (s *Supply) QuestionsFor(ctx context.Context, jd *jobdesc.JobDescription, additionalSkills string) *CategorySet {
	if s.gen != nil {
		set := s.gen.Generate(ctx, jd, additionalSkills)
		if set.Total() >= s.min {
			s.log.Info("using generated questions", "total", set.Total())
			return set
		}
		s.log.Warn("generation yield below minimum, falling back to catalog",
			"total", set.Total(), "min", s.min)
	}
	set := s.catalog.Select(jd, additionalSkills, s.min)
	s.log.Info("using catalog questions", "total", set.Total())
	return set
}
