package borderize

// GenerateResult contains generation stats
type GenerateResult struct {
	Files         []string // Input files that were parsed
	FilesScanned  int
	Labels        int // Labels that received a declaration
	PaletteColors int // Declarations taken from the palette
	RandomColors  int // Declarations generated after the palette ran out
	KeptColors    int // Declarations reused from the previous stylesheet
	OutputPath    string
	Styles        StyleMap
	Warnings      []string
}

// OutputFormat represents the stylesheet output format
type OutputFormat string

const (
	// OutputCSS writes one "<label> { border: ... }" rule per line
	OutputCSS OutputFormat = "css"
	// OutputJSON exports the rules as structured JSON (tooling integration)
	OutputJSON OutputFormat = "json"
)
