// Command prepguide generates a technical interview guide PDF from a job
// description file, either interactively or via flags.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mtreece/prepguide/internal/config"
	"github.com/mtreece/prepguide/internal/layout"
	"github.com/mtreece/prepguide/internal/pipeline"
	"github.com/mtreece/prepguide/internal/question"
)

//go:embed default-jd.txt
var defaultJD []byte

func main() {
	_ = godotenv.Load()

	var (
		filePath  string
		skills    string
		useAI     bool
		aiSet     bool
		outputDir string
		verbose   bool
	)

	root := &cobra.Command{
		Use:   "prepguide [file]",
		Short: "Generate a technical interview guide PDF from a job description",
		Long: "Reads a job description (txt, md, html, json, yaml, pdf, or docx), " +
			"sources interview questions for the role, and writes a formatted PDF guide.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				filePath = args[0]
			}
			aiSet = cmd.Flags().Changed("ai")
			return run(cmd.Context(), filePath, skills, useAI, aiSet, outputDir, verbose)
		},
	}
	root.Flags().StringVarP(&filePath, "file", "f", "", "path to the job description file")
	root.Flags().StringVarP(&skills, "skills", "s", "", "additional skills, comma-separated")
	root.Flags().BoolVar(&useAI, "ai", true, "use AI to generate questions")
	root.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for the generated PDF")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, filePath, skills string, useAI, aiSet bool, outputDir string, verbose bool) error {
	logOut := io.Discard
	if verbose {
		logOut = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logOut, nil))
	cfg := config.Load()

	console := newConsoleReader(os.Stdin, os.Stdout)
	fmt.Println("=== Technical Interview PDF Generator ===")
	fmt.Println("This application generates a comprehensive technical interview guide based on a job description.")

	if filePath == "" {
		filePath = console.readInput("Enter the path to the JD file (txt, JSON, or YAML): ")
	}

	filename := filepath.Base(filePath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Println("File not found. Using default JD template.")
		filename = "default-jd.txt"
		data = defaultJD
	}

	if skills == "" {
		skills = console.readInput("Enter additional skills (comma-separated) or press Enter to skip: ")
	}
	if !aiSet {
		useAI = console.readYesNo("Do you want to use AI to generate questions?", cfg.UseAI)
	}

	catalog := question.NewCatalog()
	var gen *question.Generator
	var client *question.OllamaClient
	if useAI {
		fmt.Println("Using AI to generate questions. This may take a few minutes...")
		client = question.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, nil)
		defer client.Close()
		gen = question.NewGenerator(client, cfg.QuestionsPerCategory, cfg.ConcurrentRequests, log)
	} else {
		fmt.Println("Using pre-defined question database.")
	}
	supply := question.NewSupply(catalog, gen, cfg.MinAIQuestions, log)

	job := &pipeline.Job{
		ID:               pipeline.GenerateULID(),
		Status:           pipeline.StatusQueued,
		Filename:         filename,
		AdditionalSkills: skills,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	job.SetFileData(data)

	w := pipeline.NewWorker(supply, log, layout.DefaultConfig(), outputDir)
	w.Process(ctx, job)

	snap := job.Snapshot()
	if snap.Status != pipeline.StatusCompleted {
		for _, e := range snap.Progress.Errors {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		return fmt.Errorf("guide generation failed during %s", snap.Phase)
	}

	fmt.Println("PDF generated successfully at:", job.OutputPath())
	return nil
}
