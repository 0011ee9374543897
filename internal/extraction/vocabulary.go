package extraction

import "strings"

// skillVocabulary is the fixed set of technology terms the extractor
// recognizes inside a skills section. Matching is case-insensitive with
// word-boundary checks; the canonical casing below is what ends up in the
// profile.
var skillVocabulary = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"Go",
	"Rust",
	"C++",
	"C#",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"Scala",
	"SQL",
	"HTML",
	"CSS",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"Express",
	"Next.js",
	"Django",
	"Flask",
	"Spring",
	"Rails",
	"GraphQL",
	"REST APIs",
	"PostgreSQL",
	"MySQL",
	"MongoDB",
	"Redis",
	"Elasticsearch",
	"Kafka",
	"RabbitMQ",
	"Docker",
	"Kubernetes",
	"Terraform",
	"AWS",
	"Azure",
	"GCP",
	"Linux",
	"Git",
	"CI/CD",
	"Jenkins",
	"Machine Learning",
	"TensorFlow",
	"PyTorch",
	"Pandas",
	"Agile",
	"Scrum",
}

// containsTerm reports whether term occurs in text as a whole word,
// case-insensitively. Boundaries are any non-alphanumeric characters, which
// keeps terms like "C++" and "Node.js" matchable where \b would fail.
func containsTerm(text, term string) bool {
	haystack := strings.ToLower(text)
	needle := strings.ToLower(term)

	for start := 0; start <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		after := idx + len(needle)
		leftOK := idx == 0 || !isWordChar(haystack[idx-1])
		rightOK := after >= len(haystack) || !isWordChar(haystack[after])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
