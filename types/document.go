package types

// Document is a single uploaded file awaiting processing. The raw bytes are
// read once at the boundary and discarded after extraction.
type Document struct {
	Name      string
	Data      []byte
	MediaType string
}

// ExtractedText pairs a document identifier with the text pulled out of it.
// Method records which extraction path produced the text.
type ExtractedText struct {
	Name   string
	Text   string
	Method string
}

// Extraction methods, in fallback order.
const (
	MethodExpense = "expense"
	MethodForms   = "forms"
	MethodPDFText = "pdf-text"
	MethodPlain   = "plain"
)

// FilteredText is ExtractedText with boilerplate sections removed.
type FilteredText struct {
	Name string
	Text string
}

// AllowedExtensions lists the upload types the API accepts. Anything else is
// rejected before it reaches the pipeline.
var AllowedExtensions = []string{".txt", ".pdf", ".png", ".jpg", ".jpeg"}

func IsAllowedExtension(ext string) bool {
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// MediaTypeFor maps an allowed file extension to its MIME type.
func MediaTypeFor(ext string) string {
	switch ext {
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}
