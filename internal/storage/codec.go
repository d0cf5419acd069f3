package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mmynk/mealplanner/internal/models"
	"github.com/mmynk/mealplanner/internal/validation"
)

// Encode serializes doc compactly for storage.
func Encode(doc models.Document) ([]byte, error) {
	doc = normalized(doc)
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Decode parses data after checking its shape. Nothing is returned for a
// document that fails the check.
func Decode(data []byte) (models.Document, error) {
	if err := validation.DocumentShapeError(data); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	doc.Normalize()
	return doc, nil
}

// ExportText returns doc as indented JSON that ImportText accepts.
func ExportText(doc models.Document) (string, error) {
	doc = normalized(doc)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to export document: %w", err)
	}
	return string(data), nil
}

// ImportText parses an exported document.
func ImportText(text string) (models.Document, error) {
	return Decode([]byte(text))
}

// normalized returns a copy of doc with no nil collections.
// doc's own slices are shared with the caller and are left alone.
func normalized(doc models.Document) models.Document {
	out := doc.Clone()
	out.Normalize()
	return out
}
