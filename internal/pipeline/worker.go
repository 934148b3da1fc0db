package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mtreece/prepguide/internal/guide"
	"github.com/mtreece/prepguide/internal/jobdesc"
	"github.com/mtreece/prepguide/internal/layout"
	"github.com/mtreece/prepguide/internal/question"
	"github.com/mtreece/prepguide/internal/render"
)

// Worker turns one uploaded job description into a finished PDF.
type Worker struct {
	supply    *question.Supply
	log       *slog.Logger
	pageCfg   layout.Config
	outputDir string
}

func NewWorker(supply *question.Supply, log *slog.Logger, pageCfg layout.Config, outputDir string) *Worker {
	return &Worker{
		supply:    supply,
		log:       log,
		pageCfg:   pageCfg,
		outputDir: outputDir,
	}
}

// Process runs the full generation pipeline for a job: parse the upload,
// source questions, build the document, flow it into pages, and write the
// PDF. Question sourcing never fails the job (it degrades to the catalog);
// parse and render failures do.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := jobdesc.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	jd, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.ContentHash = ContentHashHex(job.FileData())
	log.Info("parsed job description", "title", jd.Title, "company", jd.Company,
		"skills", len(jd.Skills))

	// Phase 2: Source questions. The supply resolves concurrency and
	// fallback internally and always returns a complete mapping.
	job.SetStatus(StatusSourcing, "sourcing questions")
	cats := w.supply.QuestionsFor(ctx, jd, job.AdditionalSkills)
	job.SetCounts(len(cats.Categories()), cats.Total())
	log.Info("sourced questions", "categories", len(cats.Categories()), "total", cats.Total())

	// Phase 3: Build the document.
	job.SetStatus(StatusBuilding, "building document")
	doc := guide.Build(jd, cats, guide.Introduction(jd), guide.FinalTips(), time.Now())

	// Phase 4: Render and save.
	job.SetStatus(StatusRendering, "rendering pdf")
	canvas := render.NewCanvas(w.pageCfg)
	layout.RenderDocument(w.pageCfg, canvas, doc)

	dest := filepath.Join(w.outputDir, OutputFilename(time.Now()))
	path, err := canvas.Save(dest)
	if err != nil {
		log.Error("save failed", "error", err)
		job.AddError(fmt.Sprintf("save: %s", err))
		job.SetStatus(StatusFailed, "rendering")
		return
	}

	job.SetOutputPath(path)
	job.SetStatus(StatusCompleted, "done")
	log.Info("guide generated", "path", path, "questions", cats.Total())
}

// OutputFilename names a generated guide after its creation time.
func OutputFilename(t time.Time) string {
	return "interview_guide_" + t.Format("20060102_150405") + ".pdf"
}
