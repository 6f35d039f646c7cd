// Package mlerror defines the error taxonomy shared by the vectorization
// and classification pipeline. Every error is raised before any partial
// state mutation, so a failed operation leaves its receiver untouched.
package mlerror

import (
	"errors"
	"fmt"
)

// ErrProbaUnsupported signals that the configured classifier does not
// expose probability scores. It marks a missing capability, not a runtime
// failure, and callers are expected to test for it with errors.Is.
var ErrProbaUnsupported = errors.New("classifier does not support probability scores")

// EmptyCorpusError indicates that an operation requiring at least one
// document received an empty corpus.
type EmptyCorpusError struct {
	Operation string
}

func (e *EmptyCorpusError) Error() string {
	return fmt.Sprintf("%s: corpus is empty, at least one document is required", e.Operation)
}

// EmptyLabelSetError indicates that label learning received no labels.
type EmptyLabelSetError struct {
	Operation string
}

func (e *EmptyLabelSetError) Error() string {
	return fmt.Sprintf("%s: label set is empty, at least one label is required", e.Operation)
}

// DimensionMismatchError indicates that two index-aligned sequences have
// different lengths.
type DimensionMismatchError struct {
	Operation string
	Left      string
	Right     string
	LeftLen   int
	RightLen  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: %s has %d entries but %s has %d, they must be index-aligned",
		e.Operation, e.Left, e.LeftLen, e.Right, e.RightLen)
}

// InsufficientClassesError indicates that training data contains fewer
// than two distinct classes, so no decision boundary can be learned.
type InsufficientClassesError struct {
	Distinct int
}

func (e *InsufficientClassesError) Error() string {
	return fmt.Sprintf("training requires at least 2 distinct classes, got %d", e.Distinct)
}

// UnknownLabelError indicates a label that was not present when the
// mapping was learned.
type UnknownLabelError struct {
	Label string
	Known int
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("label %q was not seen during learning (%d labels known)", e.Label, e.Known)
}

// UnknownCodeError indicates a class code outside the learned range.
type UnknownCodeError struct {
	Code  int
	Range int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("class code %d is outside the learned range [0, %d)", e.Code, e.Range)
}

// FeatureShapeMismatchError indicates that a prediction-time feature
// matrix has a different width than the matrix used at fit time.
type FeatureShapeMismatchError struct {
	Expected int
	Actual   int
}

func (e *FeatureShapeMismatchError) Error() string {
	return fmt.Sprintf("feature matrix has %d columns but the model was fitted with %d", e.Actual, e.Expected)
}

// NotFittedError indicates a predict or evaluate call on a pipeline or
// classifier that has never been successfully fitted.
type NotFittedError struct {
	Subject string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s is not fitted: call Fit before predicting", e.Subject)
}
