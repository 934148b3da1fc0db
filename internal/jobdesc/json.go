package jobdesc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSONParser handles JSON job postings. Field names vary between job boards,
// so each attribute is looked up under several candidate keys.
type JSONParser struct{}

func (p *JSONParser) Parse(r io.Reader, filename string) (*JobDescription, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	jd := &JobDescription{Description: string(raw)}
	fillFromMap(jd, data)
	return jd, nil
}

// fillFromMap populates a JobDescription from a decoded JSON or YAML mapping.
func fillFromMap(jd *JobDescription, data map[string]any) {
	jd.Title = stringValue(data, DefaultTitle, "title", "jobTitle", "position")
	jd.Company = stringValue(data, UnknownCompany, "company", "organization", "employer")
	jd.Skills = listValue(data, "skills", "requirements", "qualifications")
	jd.Responsibilities = listValue(data, "responsibilities", "duties", "jobDuties")
	jd.Technologies = listValue(data, "technologies", "techStack", "technicalEnvironment")

	if len(jd.Technologies) == 0 {
		jd.Technologies = technologiesFromSkills(jd.Skills)
	}
}

func stringValue(data map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if s, ok := data[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}

// listValue extracts a string list stored under the first matching key. Items
// may be plain strings, objects with a name/value/description field, or a
// single delimited string.
func listValue(data map[string]any, keys ...string) []string {
	for _, key := range keys {
		value, ok := data[key]
		if !ok {
			continue
		}

		var items []string
		switch v := value.(type) {
		case []any:
			for _, item := range v {
				switch it := item.(type) {
				case string:
					if t := strings.TrimSpace(it); t != "" {
						items = append(items, t)
					}
				case map[string]any:
					if s := stringValue(it, "", "name", "value", "description"); s != "" {
						items = append(items, s)
					}
				}
			}
		case string:
			items = splitInline(v)
		}

		if len(items) > 0 {
			return items
		}
	}
	return nil
}
