// Package docxedit provides custom error types for better error handling and reporting.
package docxedit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyChange is returned when a change carries neither deleted nor inserted text.
var ErrEmptyChange = errors.New("change needs text to delete or text to insert")

// PatternError reports a noise pattern name that is not in the catalog
type PatternError struct {
	Name string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("unknown noise pattern '%s' (known: %s)", e.Name, strings.Join(PatternNames(), ", "))
}

// NewPatternError creates a new pattern lookup error
func NewPatternError(name string) error {
	return &PatternError{Name: name}
}

// MarkupError represents run or text markup the segmenter cannot pair up
type MarkupError struct {
	Message string
	Offset  int
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("markup error at offset %d: %s", e.Offset, e.Message)
}

// NewMarkupError creates a new markup error
func NewMarkupError(message string, offset int) error {
	return &MarkupError{
		Message: message,
		Offset:  offset,
	}
}

// ChangeError represents an invalid tracked change request
type ChangeError struct {
	Author string
	Cause  error
}

func (e *ChangeError) Error() string {
	if e.Author != "" {
		return fmt.Sprintf("change error for author '%s': %v", e.Author, e.Cause)
	}
	return fmt.Sprintf("change error: %v", e.Cause)
}

func (e *ChangeError) Unwrap() error {
	return e.Cause
}

// RuleError wraps a failure returned by a replacement rule
type RuleError struct {
	Match string
	Cause error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("replacement rule failed for match '%s': %v", e.Match, e.Cause)
}

func (e *RuleError) Unwrap() error {
	return e.Cause
}

// DocumentError represents an error during document package operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// MultiError collects multiple errors
type MultiError struct {
	errors []error
}

// NewMultiError creates a new multi-error collector
func NewMultiError() *MultiError {
	return &MultiError{
		errors: make([]error, 0),
	}
}

// Add adds an error to the collection (ignores nil errors)
func (m *MultiError) Add(err error) {
	if err != nil {
		m.errors = append(m.errors, err)
	}
}

// Len returns the number of errors
func (m *MultiError) Len() int {
	return len(m.errors)
}

// Err returns the multi-error or nil if empty
func (m *MultiError) Err() error {
	if len(m.errors) == 0 {
		return nil
	}
	if len(m.errors) == 1 {
		return m.errors[0]
	}
	return m
}

func (m *MultiError) Error() string {
	if len(m.errors) == 0 {
		return "no errors"
	}

	if len(m.errors) == 1 {
		return m.errors[0].Error()
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d errors occurred:", len(m.errors)))
	for i, err := range m.errors {
		parts = append(parts, fmt.Sprintf("  [%d] %v", i+1, err))
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes the collected errors to errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.errors
}

// ContextError adds context to an existing error
type ContextError struct {
	Operation string
	Context   map[string]interface{}
	Cause     error
}

func (e *ContextError) Error() string {
	var contextParts []string
	for k, v := range e.Context {
		contextParts = append(contextParts, fmt.Sprintf("%s=%v", k, v))
	}

	if len(contextParts) > 0 {
		return fmt.Sprintf("%s [%s]: %v", e.Operation, strings.Join(contextParts, ", "), e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
}

func (e *ContextError) Unwrap() error {
	return e.Cause
}

// WithContext wraps an error with additional context
func WithContext(err error, operation string, context map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &ContextError{
		Operation: operation,
		Context:   context,
		Cause:     err,
	}
}

// RecoverError converts a panic recovery value to an error
func RecoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return fmt.Errorf("panic recovered: %w", v)
	case string:
		return fmt.Errorf("panic recovered: %s", v)
	default:
		return fmt.Errorf("panic recovered: %v", v)
	}
}

// IsPatternError checks if an error is a pattern lookup error
func IsPatternError(err error) bool {
	var target *PatternError
	return errors.As(err, &target)
}

// IsMarkupError checks if an error is a markup error
func IsMarkupError(err error) bool {
	var target *MarkupError
	return errors.As(err, &target)
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	var target *DocumentError
	return errors.As(err, &target)
}

// IsRuleError checks if an error is a replacement rule error
func IsRuleError(err error) bool {
	var target *RuleError
	return errors.As(err, &target)
}
