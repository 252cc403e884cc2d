package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tieubaoca/docsum-be/types"
)

type fakeAnalyzer struct {
	expenseFields map[string]string
	expenseErr    error
	blocks        []Block
	documentErr   error

	expenseCalls  int
	documentCalls int
}

func (f *fakeAnalyzer) AnalyzeExpense(ctx context.Context, data []byte) (map[string]string, error) {
	f.expenseCalls++
	return f.expenseFields, f.expenseErr
}

func (f *fakeAnalyzer) AnalyzeDocument(ctx context.Context, data []byte, features []string) ([]Block, error) {
	f.documentCalls++
	return f.blocks, f.documentErr
}

type fakePageReader struct {
	pages []string
	err   error
	calls int
}

func (f *fakePageReader) ReadPages(data []byte) ([]string, error) {
	f.calls++
	return f.pages, f.err
}

func testDoc() types.Document {
	return types.Document{Name: "ticket.pdf", Data: []byte("%PDF-1.4"), MediaType: "application/pdf"}
}

func TestExtract_ExpenseFieldsWin(t *testing.T) {
	analyzer := &fakeAnalyzer{expenseFields: map[string]string{"Total": "4500", "PNR": "1234567890"}}
	svc := NewExtractService(analyzer, &fakePageReader{})

	got, err := svc.Extract(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Method != types.MethodExpense {
		t.Errorf("method = %q, want %q", got.Method, types.MethodExpense)
	}
	if !strings.Contains(got.Text, "4500") || !strings.Contains(got.Text, "PNR") {
		t.Errorf("expense fields missing from text: %q", got.Text)
	}
	if analyzer.documentCalls != 0 {
		t.Errorf("forms analysis should not run after expense success, ran %d times", analyzer.documentCalls)
	}
}

func TestExtract_EmptyExpenseFallsThroughToForms(t *testing.T) {
	analyzer := &fakeAnalyzer{
		expenseFields: map[string]string{},
		blocks: []Block{
			{BlockType: BlockTypeLine, Text: "Hotel Sunrise"},
			{BlockType: "WORD", Text: "ignored"},
			{BlockType: BlockTypeLine, Text: "Room 204"},
		},
	}
	svc := NewExtractService(analyzer, &fakePageReader{})

	got, err := svc.Extract(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Method != types.MethodForms {
		t.Errorf("method = %q, want %q", got.Method, types.MethodForms)
	}
	if got.Text != "Hotel Sunrise\nRoom 204" {
		t.Errorf("line blocks not joined in order: %q", got.Text)
	}
}

func TestExtract_UnsupportedEverywhereFallsBackToTextLayer(t *testing.T) {
	analyzer := &fakeAnalyzer{
		expenseErr:  ErrUnsupportedDocument,
		documentErr: ErrUnsupportedDocument,
	}
	pages := &fakePageReader{pages: []string{"Hello world"}}
	svc := NewExtractService(analyzer, pages)

	got, err := svc.Extract(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pages.calls != 1 {
		t.Fatalf("local parser invoked %d times, want 1", pages.calls)
	}
	if got.Method != types.MethodPDFText {
		t.Errorf("method = %q, want %q", got.Method, types.MethodPDFText)
	}
	if !strings.Contains(got.Text, "--- PAGE 1 ---") {
		t.Errorf("page marker missing: %q", got.Text)
	}
	if !strings.Contains(got.Text, "Hello world") {
		t.Errorf("page text missing: %q", got.Text)
	}
}

func TestExtract_PageMarkersKeepPageNumbers(t *testing.T) {
	pages := &fakePageReader{pages: []string{"", "Second page content"}}
	svc := NewExtractService(nil, pages)

	got, err := svc.Extract(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got.Text, "--- PAGE 2 ---") {
		t.Errorf("empty first page must not renumber the second: %q", got.Text)
	}
	if strings.Contains(got.Text, "--- PAGE 1 ---") {
		t.Errorf("empty page should not emit a marker: %q", got.Text)
	}
}

func TestExtract_NilAnalyzerSkipsOCR(t *testing.T) {
	pages := &fakePageReader{pages: []string{"local only"}}
	svc := NewExtractService(nil, pages)

	got, err := svc.Extract(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Method != types.MethodPDFText {
		t.Errorf("method = %q, want %q", got.Method, types.MethodPDFText)
	}
}

func TestExtract_NoTextAnywhere(t *testing.T) {
	analyzer := &fakeAnalyzer{expenseErr: ErrUnsupportedDocument, documentErr: ErrUnsupportedDocument}
	svc := NewExtractService(analyzer, &fakePageReader{pages: []string{"", "  "}})

	_, err := svc.Extract(context.Background(), testDoc())
	if !errors.Is(err, ErrNoTextDetected) {
		t.Fatalf("err = %v, want ErrNoTextDetected", err)
	}
	if !strings.Contains(err.Error(), NoTextMarker) {
		t.Errorf("error should carry the marker text, got %q", err.Error())
	}
}

func TestExtract_ParserFailureSurfaces(t *testing.T) {
	parserErr := errors.New("failed to open pdf")
	svc := NewExtractService(nil, &fakePageReader{err: parserErr})

	_, err := svc.Extract(context.Background(), testDoc())
	if !errors.Is(err, parserErr) {
		t.Fatalf("err = %v, want wrapped parser error", err)
	}
}
