// Package transfer converts card contents to and from CSV and JSON deck files.
package transfer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"flashcards/internal/domain"
)

const (
	frontHeader = "FRONT"
	backHeader  = "BACK"
)

// Decode reads card contents in the given format
func Decode(r io.Reader, f Format) ([]domain.CardContent, error) {
	switch f {
	case CSV:
		return decodeCSV(r)
	case JSON:
		return decodeJSON(r)
	}
	return nil, fmt.Errorf("%w: unsupported format %s", domain.ErrInvalidImport, f)
}

// Encode writes card contents in the given format
func Encode(w io.Writer, f Format, cards []domain.CardContent) error {
	switch f {
	case CSV:
		return encodeCSV(w, cards)
	case JSON:
		return encodeJSON(w, cards)
	}
	return fmt.Errorf("unsupported format %s", f)
}

// decodeCSV maps columns by header name, so the header row decides
// where front and back live
func decodeCSV(r io.Reader) ([]domain.CardContent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: csv file is empty", domain.ErrInvalidImport)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}

	frontCol, backCol := -1, -1
	for i, name := range header {
		switch strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case frontHeader:
			frontCol = i
		case backHeader:
			backCol = i
		}
	}
	if frontCol < 0 || backCol < 0 {
		return nil, fmt.Errorf("%w: csv header must contain FRONT and BACK columns", domain.ErrInvalidImport)
	}

	cards := []domain.CardContent{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
		}
		cards = append(cards, domain.CardContent{
			Front: field(record, frontCol),
			Back:  field(record, backCol),
		})
	}

	return cards, nil
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

// decodeJSON accepts exactly one JSON array and nothing after it
func decodeJSON(r io.Reader) ([]domain.CardContent, error) {
	dec := json.NewDecoder(r)

	var cards []domain.CardContent
	if err := dec.Decode(&cards); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}
	if cards == nil {
		return nil, fmt.Errorf("%w: json file must contain an array of cards", domain.ErrInvalidImport)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the card array", domain.ErrInvalidImport)
	}
	return cards, nil
}

func encodeCSV(w io.Writer, cards []domain.CardContent) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{frontHeader, backHeader}); err != nil {
		return err
	}
	for _, c := range cards {
		if err := writer.Write([]string{c.Front, c.Back}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func encodeJSON(w io.Writer, cards []domain.CardContent) error {
	if cards == nil {
		cards = []domain.CardContent{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
