package llm

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// matchResultSchema is the JSON Schema every provider response must satisfy
// before decoding. It mirrors the prompt's declared output format; the
// suggestion/tip/strength lists are advisory and therefore optional.
const matchResultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["match_score", "found_keywords", "missing_keywords", "suggestions"],
  "properties": {
    "match_score": {"type": "number"},
    "match_reasoning": {"type": "string"},
    "found_keywords": {
      "type": "object",
      "properties": {
        "technical_skills": {"type": "array", "items": {"type": "string"}},
        "soft_skills": {"type": "array", "items": {"type": "string"}},
        "experience_keywords": {"type": "array", "items": {"type": "string"}},
        "education_keywords": {"type": "array", "items": {"type": "string"}}
      }
    },
    "missing_keywords": {
      "type": "object",
      "properties": {
        "critical_technical_skills": {"type": "array", "items": {"type": "string"}},
        "important_soft_skills": {"type": "array", "items": {"type": "string"}},
        "experience_gaps": {"type": "array", "items": {"type": "string"}},
        "education_gaps": {"type": "array", "items": {"type": "string"}}
      }
    },
    "suggestions": {"type": "array", "items": {"type": "string"}},
    "ats_optimization_tips": {"type": "array", "items": {"type": "string"}},
    "strengths": {"type": "array", "items": {"type": "string"}}
  }
}`

// ValidateMatchJSON checks a raw JSON document against the match result
// schema, reporting every failing field.
func ValidateMatchJSON(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(matchResultSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("invalid match result:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
