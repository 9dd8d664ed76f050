package errors

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette signals that a palette source defined aliases but not a
// single concrete color, which makes every reference unresolvable.
var ErrEmptyPalette = errors.New("no direct color definitions found")

// ParseError represents a failure to extract a palette from source text.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError for the given source path.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ColorFormatError reports a hex value that failed format validation:
// wrong length, wrong charset, or a value that already carries alpha.
type ColorFormatError struct {
	Value   string
	Message string
}

// NewColorFormatError constructs a ColorFormatError for the given value.
func NewColorFormatError(value, message string) error {
	return &ColorFormatError{Value: value, Message: message}
}

func (e *ColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Message)
}

// ColorOpacityError reports an opacity suffix that is missing, non-numeric,
// or outside [0,1].
type ColorOpacityError struct {
	Reference string
	Message   string
}

// NewColorOpacityError constructs a ColorOpacityError for the given reference.
func NewColorOpacityError(reference, message string) error {
	return &ColorOpacityError{Reference: reference, Message: message}
}

func (e *ColorOpacityError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid opacity in %q: %s", e.Reference, e.Message)
}

// ColorReferenceError reports a name that could not be resolved to a
// concrete color through any lookup path.
type ColorReferenceError struct {
	Name string
}

// NewColorReferenceError constructs a ColorReferenceError for the given name.
func NewColorReferenceError(name string) error {
	return &ColorReferenceError{Name: name}
}

func (e *ColorReferenceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unresolved color reference %q", e.Name)
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RendererError indicates issues within renderer registration or lookup.
type RendererError struct {
	Renderer string
	Message  string
	Err      error
}

// NewRendererError constructs a RendererError for the given renderer name.
func NewRendererError(renderer string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RendererError{Renderer: renderer, Message: message, Err: err}
}

func (e *RendererError) Error() string {
	if e == nil {
		return ""
	}
	if e.Renderer != "" {
		return fmt.Sprintf("renderer error [%s]: %s", e.Renderer, e.Message)
	}
	return fmt.Sprintf("renderer error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RendererError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerationError aggregates per-variant failures from a generation run.
// It is surfaced only when at least one variant failed; successful sibling
// variants are unaffected by it.
type GenerationError struct {
	Failed int
	Total  int
	Errs   []error
}

// NewGenerationError constructs a GenerationError from per-variant errors.
func NewGenerationError(failed, total int, errs []error) error {
	return &GenerationError{Failed: failed, Total: total, Errs: errs}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("generation failed for %d of %d variants", e.Failed, e.Total)
}

// Unwrap exposes the aggregated per-variant errors.
func (e *GenerationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return e.Errs
}
