package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Route registration (E100-E119)
	"E100": {
		Category:   CategoryRoute,
		Message:    "Duplicate route",
		Suggestion: "Each page needs its own route; rename one of the pages.",
	},
	"E101": {
		Category:   CategoryRoute,
		Message:    "Invalid route",
		Suggestion: "Routes start with /, have no trailing slash and no empty, . or .. segments.",
	},
	"E102": {
		Category:   CategoryRoute,
		Message:    "Registry is sealed",
		Suggestion: "Register every page from pages.Register before the server starts.",
	},
	"E103": {
		Category: CategoryRoute,
		Message:  "Page title is empty",
	},

	// Configuration (E120-E139)
	"E120": {
		Category:   CategoryConfig,
		Message:    "Cannot parse site.json",
		Suggestion: "Check the file is valid JSON.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Cannot write configuration",
	},

	// Request handling (E140-E159)
	"E140": {
		Category: CategoryRuntime,
		Message:  "Page not found",
	},
	"E141": {
		Category: CategoryRuntime,
		Message:  "Page render failed",
	},

	// Content (E200-E219)
	"E200": {
		Category:   CategoryContent,
		Message:    "Invalid post frontmatter",
		Suggestion: "Posts start with a YAML block between --- lines.",
	},
	"E201": {
		Category:   CategoryContent,
		Message:    "Post is missing a required field",
		Suggestion: "Every post needs a title and a date (2006-01-02).",
	},
	"E202": {
		Category:   CategoryContent,
		Message:    "Duplicate post slug",
		Suggestion: "Post file names must be unique; rename one of the files.",
	},
	"E203": {
		Category: CategoryContent,
		Message:  "Cannot read writings",
	},
	"E210": {
		Category: CategoryContent,
		Message:  "Invalid books file",
	},

	// Build and deploy (E300-E319)
	"E300": {
		Category: CategoryBuild,
		Message:  "Static export failed",
	},
	"E310": {
		Category:   CategoryDeploy,
		Message:    "Deploy failed",
		Suggestion: "Check AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and the bucket name.",
	},
}

// Sentinels for errors.Is checks. They match any Error with the same code.
var (
	ErrDuplicateRoute = New("E100")
	ErrInvalidRoute   = New("E101")
	ErrSealed         = New("E102")
	ErrEmptyTitle     = New("E103")
	ErrNotFound       = New("E140")
	ErrDuplicateSlug  = New("E202")
)

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
