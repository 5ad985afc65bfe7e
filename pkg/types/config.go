package types

// ParserConfig holds settings for the citation parser.
type ParserConfig struct {
	// Dashes lists the characters accepted between the start and end of a
	// page range (default "-–", ASCII hyphen plus en-dash). Reference
	// lists pasted from PDFs mix the two freely.
	Dashes string `json:"dashes" yaml:"dashes"`
}

// OutputFormat selects how parsed records are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputCSL  OutputFormat = "csl"
)

// OutputConfig holds settings for result rendering.
type OutputConfig struct {
	// Format selects the output format: text, json, yaml, or csl.
	Format OutputFormat `json:"format" yaml:"format"`
}

// Config groups all apacite configuration.
type Config struct {
	Parser ParserConfig `json:"parser" yaml:"parser"`
	Output OutputConfig `json:"output" yaml:"output"`
}
