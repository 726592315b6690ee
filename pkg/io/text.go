package io

import (
	"io"
	"os"
	"strings"

	"github.com/matzehuels/wordgraph/pkg/errors"
)

// unreadable is the message shown when the input text cannot be loaded.
const unreadable = "Invalid file path or failed to read file. Please try again."

// ReadText reads the file at path and returns its lines joined by single
// spaces. Any failure is reported as an [errors.ErrCodeInputUnreadable]
// error, which interactive callers treat as "ask again".
func ReadText(path string) (string, error) {
	if err := errors.ValidateInputPath(path); err != nil {
		return "", errors.Wrap(errors.ErrCodeInputUnreadable, err, unreadable)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInputUnreadable, err, unreadable)
	}
	defer f.Close()

	text, err := ReadTextFrom(f)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInputUnreadable, err, unreadable)
	}
	return text, nil
}

// ReadTextFrom reads r to EOF and joins its lines by single spaces.
// Both "\n" and "\r\n" line endings are recognized.
func ReadTextFrom(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.ReplaceAll(s, "\n", " "), nil
}
