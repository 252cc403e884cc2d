package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFService reads the embedded text layer of a PDF, page by page. It works
// entirely offline, which makes it the extraction path of last resort when
// the OCR collaborator is unavailable or rejects the document.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// ReadPages returns one string per page, in page order. Pages without a
// readable text layer come back empty rather than failing the document.
func (s *PDFService) ReadPages(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for pageIndex := 1; pageIndex <= numPages; pageIndex++ {
		p := reader.Page(pageIndex)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}
