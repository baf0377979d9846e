package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// maxFormMemory bounds the in-memory part of multipart bodies.
const maxFormMemory = 1 << 20

// parseForm parses url-encoded and multipart bodies into r.PostForm.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("%w: malformed form body", domain.ErrInvalidInput)
	}
	return nil
}

func formString(r *http.Request, field string) (string, error) {
	values, ok := r.PostForm[field]
	if !ok || len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
	}
	return values[0], nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	raw, err := formString(r, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, field)
	}
	return v, nil
}

func formInt(r *http.Request, field string) (int64, error) {
	raw, err := formString(r, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, field)
	}
	return v, nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", domain.ErrInvalidInput)
	}
	return id, nil
}
