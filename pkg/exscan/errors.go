package exscan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/exscan-go/pkg/exscan/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrInvalidPosition indicates a base row or column below 1.
var ErrInvalidPosition = errors.New("invalid position")

// ErrInvalidOffset indicates a negative row or column offset.
var ErrInvalidOffset = errors.New("invalid offset")

// ErrDisambiguationNeeded indicates a single keyword matched several rows or columns.
var ErrDisambiguationNeeded = errors.New("disambiguation needed")

// ErrNoConsensus indicates the keywords share no row or column.
var ErrNoConsensus = errors.New("no consensus")

// ErrAmbiguousConsensus indicates the keywords share more than one row or column.
var ErrAmbiguousConsensus = errors.New("ambiguous consensus")

// ErrClosed indicates the cell accessor was released by Close.
var ErrClosed = errors.New("scanner closed")

// Backend names a grid representation.
type Backend string

const (
	// BackendBulk is the formula-blind bulk table.
	BackendBulk Backend = "bulk"
	// BackendCells is the formula-preserving cell accessor.
	BackendCells Backend = "cells"
)

// LoadError represents a failure to materialize a backend.
type LoadError struct {
	Path    string
	Backend Backend
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s backend for %q: %v", e.Backend, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Axis selects rows or columns in consensus resolution.
type Axis string

const (
	// AxisRow resolves a shared row.
	AxisRow Axis = "row"
	// AxisCol resolves a shared column.
	AxisCol Axis = "column"
)

// KeywordSet is the set of rows or columns a keyword matched on.
type KeywordSet struct {
	Keyword string
	Indexes []int
}

// DisambiguationError reports a lone keyword found on several rows or columns.
type DisambiguationError struct {
	Axis       Axis
	Keyword    string
	Candidates []int
}

func (e *DisambiguationError) Error() string {
	return fmt.Sprintf("keyword %q found in %d %ss %v; add 1-2 more keywords to pin a single %s",
		e.Keyword, len(e.Candidates), e.Axis, e.Candidates, e.Axis)
}

func (e *DisambiguationError) Unwrap() error {
	return ErrDisambiguationNeeded
}

// NoConsensusError reports keywords that share no row or column.
type NoConsensusError struct {
	Axis Axis
	Sets []KeywordSet
}

func (e *NoConsensusError) Error() string {
	parts := make([]string, len(e.Sets))
	for i, s := range e.Sets {
		parts[i] = fmt.Sprintf("%q: %v", s.Keyword, s.Indexes)
	}
	return fmt.Sprintf("no common %s across keywords (%s)", e.Axis, strings.Join(parts, ", "))
}

func (e *NoConsensusError) Unwrap() error {
	return ErrNoConsensus
}

// AmbiguousConsensusError reports keywords that share several rows or columns.
type AmbiguousConsensusError struct {
	Axis     Axis
	Keywords []string
	Shared   []int
}

func (e *AmbiguousConsensusError) Error() string {
	return fmt.Sprintf("keywords %q share %d %ss %v; add keywords to pin a single %s",
		e.Keywords, len(e.Shared), e.Axis, e.Shared, e.Axis)
}

func (e *AmbiguousConsensusError) Unwrap() error {
	return ErrAmbiguousConsensus
}

// ExtractionError represents an error during document extraction.
type ExtractionError struct {
	Component string // "header", "line_items", "details", "summary"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error (%s): %v", e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(component string, err error) *ExtractionError {
	return &ExtractionError{
		Component: component,
		Err:       err,
	}
}
