package jobdesc

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// JobDescription is the normalized record extracted from a job posting file.
type JobDescription struct {
	Title            string
	Company          string
	Skills           []string
	Responsibilities []string
	Technologies     []string
	Description      string
}

// Defaults used when a posting does not state them.
const (
	DefaultTitle   = "Java Developer"
	UnknownCompany = "Unknown Company"
)

// Parser converts raw job-description bytes into a JobDescription.
type Parser interface {
	Parse(r io.Reader, filename string) (*JobDescription, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".json": true,
	".yaml": true,
	".yml":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".json":
		return &JSONParser{}, nil
	case ".yaml", ".yml":
		return &YAMLParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
