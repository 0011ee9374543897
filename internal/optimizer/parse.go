package optimizer

import (
	"encoding/json"
	"fmt"

	"github.com/ethanmills/resumatch/internal/llm"
	"github.com/ethanmills/resumatch/internal/schemas"
	"github.com/ethanmills/resumatch/internal/types"
)

// oracleReplySchema constrains the shape of the oracle's JSON reply before
// it is unmarshaled. Extra fields are tolerated; wrong types are not.
const oracleReplySchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "summary": {"type": "string"},
    "skills": {"type": "array", "items": {"type": "string"}},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "organization": {"type": "string"},
          "title": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": "string"},
          "credential": {"type": "string"},
          "field": {"type": "string"},
          "completion_date": {"type": "string"}
        }
      }
    }
  }
}`

// oracleProfile is the subset of profile fields the oracle may revise
type oracleProfile struct {
	Name       string                  `json:"name"`
	Email      string                  `json:"email"`
	Phone      string                  `json:"phone"`
	Summary    string                  `json:"summary"`
	Skills     []string                `json:"skills"`
	Experience []types.ExperienceEntry `json:"experience"`
	Education  []types.EducationEntry  `json:"education"`
}

// parseOracleReply extracts the first balanced JSON object from the reply,
// validates it against the reply schema, and unmarshals it. Any failure is
// returned to the caller, which switches to the fallback path.
func parseOracleReply(reply string) (*oracleProfile, error) {
	text := llm.CleanJSONBlock(reply)

	object, err := firstJSONObject(text)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateString(oracleReplySchema, object); err != nil {
		return nil, fmt.Errorf("reply failed schema validation: %w", err)
	}

	var parsed oracleProfile
	if err := json.Unmarshal([]byte(object), &parsed); err != nil {
		return nil, fmt.Errorf("reply is not valid JSON: %w", err)
	}

	return &parsed, nil
}

// firstJSONObject returns the first balanced {...} object in text. Braces
// inside JSON strings do not count toward balance.
func firstJSONObject(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	if start < 0 {
		return "", fmt.Errorf("no JSON object found in reply")
	}
	return "", fmt.Errorf("unbalanced JSON object in reply")
}
