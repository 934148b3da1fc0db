package question

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mtreece/prepguide/internal/jobdesc"
)

// Generator produces interview questions by prompting an LLM, one request
// per subcategory, with categories fetched concurrently under a bounded
// semaphore. Results merge into a CategorySet only after every category
// task has finished.
type Generator struct {
	client      *OllamaClient
	log         *slog.Logger
	perCategory int
	concurrency int
}

func NewGenerator(client *OllamaClient, perCategory, concurrency int, log *slog.Logger) *Generator {
	if perCategory <= 0 {
		perCategory = 20
	}
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Generator{
		client:      client,
		log:         log,
		perCategory: perCategory,
		concurrency: concurrency,
	}
}

// Generate fetches questions for every category relevant to the job
// description. A failed subcategory contributes a single fallback question
// rather than failing the run; the caller decides whether the overall yield
// is good enough.
func (g *Generator) Generate(ctx context.Context, jd *jobdesc.JobDescription, additionalSkills string) *CategorySet {
	cats := CategoriesFor(jd, additionalSkills)

	results := make([][]Question, len(cats))
	sem := make(chan struct{}, g.concurrency)
	var wg sync.WaitGroup
	for i, cat := range cats {
		wg.Add(1)
		go func(i int, cat string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = g.generateCategory(ctx, cat, jd)
		}(i, cat)
	}
	wg.Wait()

	set := NewCategorySet()
	for i, cat := range cats {
		set.Add(cat, results[i]...)
	}
	return set
}

func (g *Generator) generateCategory(ctx context.Context, category string, jd *jobdesc.JobDescription) []Question {
	subs := Subcategories(category)
	perSub := g.perCategory / len(subs)
	if perSub < 1 {
		perSub = 1
	}

	var questions []Question
	for _, sub := range subs {
		qs, err := g.generateSubcategory(ctx, category, sub, perSub, jd)
		if err != nil {
			g.log.Warn("question generation failed",
				"category", category, "subcategory", sub, "error", err)
			questions = append(questions, fallbackQuestion(category, sub,
				"The generated content could not be retrieved."))
			continue
		}
		questions = append(questions, qs...)
	}
	return questions
}

func (g *Generator) generateSubcategory(ctx context.Context, category, sub string, count int, jd *jobdesc.JobDescription) ([]Question, error) {
	prompt := buildPrompt(category, sub, count, jd)

	var raw string
	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(Backoff(attempt - 1)):
			}
		}
		var err error
		raw, err = g.client.Generate(ctx, prompt)
		if err == nil {
			lastErr = nil
			break
		}
		lastErr = err
		if !IsRetryable(err) {
			return nil, err
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	return parseResponse(raw, category, sub), nil
}

func buildPrompt(category, sub string, count int, jd *jobdesc.JobDescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d detailed technical interview questions and answers about %s in %s for a %s position.\n\n",
		count, sub, category, jd.Title)
	fmt.Fprintf(&b, "Job skills include: %s\n", strings.Join(jd.Skills, ", "))
	fmt.Fprintf(&b, "Technologies include: %s\n\n", strings.Join(jd.Technologies, ", "))
	b.WriteString("For each question, provide:\n")
	b.WriteString("1. A challenging, specific technical question that would be asked in an interview\n")
	b.WriteString("2. A comprehensive, detailed answer (at least 400 words) with examples, best practices, and technical details\n\n")
	b.WriteString("Format your response as JSON with this structure:\n")
	b.WriteString("{\n")
	b.WriteString("  \"questions\": [\n")
	b.WriteString("    {\n")
	b.WriteString("      \"question\": \"Question text here\",\n")
	b.WriteString("      \"answer\": \"Detailed answer here\"\n")
	b.WriteString("    }\n")
	b.WriteString("  ]\n")
	b.WriteString("}\n")
	return b.String()
}

type generatedPayload struct {
	Questions []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"questions"`
}

// parseResponse extracts questions from a model completion. It first tries
// the JSON object embedded in the text, then falls back to scanning Q:/A:
// prefixed lines, and finally to a single placeholder question so a bad
// completion never empties a subcategory.
func parseResponse(raw, category, sub string) []Question {
	var questions []Question

	if open := strings.Index(raw, "{"); open >= 0 {
		if end := strings.LastIndex(raw, "}"); end > open {
			var payload generatedPayload
			if err := json.Unmarshal([]byte(raw[open:end+1]), &payload); err == nil {
				for _, q := range payload.Questions {
					if q.Question == "" {
						continue
					}
					questions = append(questions, Question{
						Category:    category,
						Subcategory: sub,
						Question:    q.Question,
						Answer:      q.Answer,
						CodeExample: codeExampleFrom(q.Answer),
						Difficulty:  3,
					})
				}
			}
		}
	}

	if len(questions) == 0 {
		questions = parseQALines(raw, category, sub)
	}
	if len(questions) == 0 {
		questions = append(questions, fallbackQuestion(category, sub,
			"The generated content could not be parsed correctly."))
	}
	return questions
}

func parseQALines(raw, category, sub string) []Question {
	var questions []Question
	var current string
	var answer strings.Builder

	flush := func() {
		if current != "" && answer.Len() > 0 {
			a := strings.TrimSpace(answer.String())
			questions = append(questions, Question{
				Category:    category,
				Subcategory: sub,
				Question:    current,
				Answer:      a,
				CodeExample: codeExampleFrom(a),
				Difficulty:  3,
			})
		}
		answer.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "Q:") || strings.HasPrefix(line, "Question:"):
			flush()
			current = strings.TrimSpace(line[strings.Index(line, ":")+1:])
		case strings.HasPrefix(line, "A:") || strings.HasPrefix(line, "Answer:"):
			answer.WriteString(strings.TrimSpace(line[strings.Index(line, ":")+1:]))
			answer.WriteString("\n")
		case current != "":
			answer.WriteString(line)
			answer.WriteString("\n")
		}
	}
	flush()
	return questions
}

func fallbackQuestion(category, sub, note string) Question {
	return Question{
		Category:    category,
		Subcategory: sub,
		Question:    fmt.Sprintf("Explain the key concepts of %s in %s", sub, category),
		Answer:      "This is a placeholder answer. " + note,
		Difficulty:  2,
	}
}
