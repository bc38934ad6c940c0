// Package parser reads JSON documents and converts them into Arma
// values. It is the input half of the CLI pipeline; the library's own
// conversion protocols live in internal/convert.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/armago/internal/convert"
	"github.com/mcncl/armago/internal/errors"
	"github.com/mcncl/armago/internal/value"
)

// Parse decodes a single JSON document from reader into an Arma value.
// Numbers are decoded as json.Number so precision is preserved up to the
// final widening to float64. A nil converter falls back to the default.
func Parse(reader io.Reader, conv *convert.Converter) (value.Value, error) {
	if conv == nil {
		conv = convert.NewConverter()
	}

	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var root any
	if err := decoder.Decode(&root); err != nil {
		if stderrors.Is(err, io.EOF) {
			return value.Nil(), errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return value.Nil(), errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		return value.Nil(), errors.NewParsingError("failed to decode JSON", err)
	}

	// Reject anything but whitespace after the first document.
	if decoder.More() {
		var trailing any
		if err := decoder.Decode(&trailing); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return value.Nil(), errors.NewParsingError("invalid trailing data after first JSON value", err)
			}
		} else {
			return value.Nil(), errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	converted, err := conv.ToValue(root)
	if err != nil {
		return value.Nil(), err
	}
	return converted, nil
}

// ParseString parses a JSON document from a string
func ParseString(jsonString string, conv *convert.Converter) (value.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return value.Nil(), errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString), conv)
}

// ParseFile parses a JSON document from a file path
func ParseFile(filePath string, conv *convert.Converter) (value.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return value.Nil(), errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return value.Nil(), errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return value.Nil(), errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return value.Nil(), errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return value.Nil(), errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file, conv)
}
