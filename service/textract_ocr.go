package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	textracttypes "github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// TextractAnalyzer implements DocumentAnalyzer on AWS Textract.
type TextractAnalyzer struct {
	client *textract.Client
}

func NewTextractAnalyzer(cfg aws.Config) *TextractAnalyzer {
	return &TextractAnalyzer{client: textract.NewFromConfig(cfg)}
}

// AnalyzeExpense runs Textract's expense analysis and flattens the detected
// line-item fields into a name/value map.
func (a *TextractAnalyzer) AnalyzeExpense(ctx context.Context, data []byte) (map[string]string, error) {
	out, err := a.client.AnalyzeExpense(ctx, &textract.AnalyzeExpenseInput{
		Document: &textracttypes.Document{Bytes: data},
	})
	if err != nil {
		return nil, wrapTextractErr(err)
	}

	fields := make(map[string]string)
	for _, doc := range out.ExpenseDocuments {
		for _, group := range doc.LineItemGroups {
			for _, item := range group.LineItems {
				for _, field := range item.LineItemExpenseFields {
					name := "Unknown"
					if field.Type != nil && field.Type.Text != nil {
						name = *field.Type.Text
					}
					value := ""
					if field.ValueDetection != nil && field.ValueDetection.Text != nil {
						value = *field.ValueDetection.Text
					}
					fields[name] = value
				}
			}
		}
	}
	return fields, nil
}

// AnalyzeDocument runs generic document analysis with the requested feature
// types and returns the detected blocks in the order Textract emits them.
func (a *TextractAnalyzer) AnalyzeDocument(ctx context.Context, data []byte, features []string) ([]Block, error) {
	featureTypes := make([]textracttypes.FeatureType, 0, len(features))
	for _, f := range features {
		featureTypes = append(featureTypes, textracttypes.FeatureType(f))
	}

	out, err := a.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:     &textracttypes.Document{Bytes: data},
		FeatureTypes: featureTypes,
	})
	if err != nil {
		return nil, wrapTextractErr(err)
	}

	blocks := make([]Block, 0, len(out.Blocks))
	for _, b := range out.Blocks {
		text := ""
		if b.Text != nil {
			text = *b.Text
		}
		blocks = append(blocks, Block{BlockType: string(b.BlockType), Text: text})
	}
	return blocks, nil
}

func wrapTextractErr(err error) error {
	var unsupported *textracttypes.UnsupportedDocumentException
	if errors.As(err, &unsupported) {
		return fmt.Errorf("%w: %s", ErrUnsupportedDocument, unsupported.ErrorMessage())
	}
	return err
}
