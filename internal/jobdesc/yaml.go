package jobdesc

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser handles YAML job postings using the same flexible key lookup as
// the JSON parser.
type YAMLParser struct{}

func (p *YAMLParser) Parse(r io.Reader, filename string) (*JobDescription, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	jd := &JobDescription{Description: string(raw)}
	fillFromMap(jd, data)
	return jd, nil
}
