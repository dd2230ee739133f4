// ============================================================================
// strlab - String Manipulation Lab
// ============================================================================
//
// Package:     sequence
// Description: Builds the text "1 2 ... n" with four concatenation strategies
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

// Package sequence builds the space-separated sequence "1 2 ... n" in four
// different ways so that their cost can be compared. All strategies return
// identical text for the same n.
package sequence

import (
	"slices"
	"strconv"
	"strings"

	"github.com/msto63/strlab/foundation/core/errors"
)

// Strategy labels
const (
	LabelAppendConcat  = "StringAppendEnd"
	LabelPrependConcat = "StringInsertStart"
	LabelAppendBuilder = "BuilderAppendEnd"
	LabelPrependBuffer = "BufferInsertStart"
)

// BuildFunc builds the sequence for n
type BuildFunc func(n int) (string, error)

// Strategy pairs a build function with its report label and description
type Strategy struct {
	Name        string
	Description string
	Build       BuildFunc
}

// Strategies returns the four strategies in report order
func Strategies() []Strategy {
	return []Strategy{
		{
			Name:        LabelAppendConcat,
			Description: "string, appending 1 to n using +=",
			Build:       AppendConcat,
		},
		{
			Name:        LabelPrependConcat,
			Description: "string, inserting n to 1 using +",
			Build:       PrependConcat,
		},
		{
			Name:        LabelAppendBuilder,
			Description: "strings.Builder, appending 1 to n using WriteString()",
			Build:       AppendBuilder,
		},
		{
			Name:        LabelPrependBuffer,
			Description: "[]byte, inserting n to 1 using slices.Insert()",
			Build:       PrependBuffer,
		},
	}
}

func checkN(operation string, n int) error {
	if n < 1 {
		return errors.InvalidArgument(errors.ModuleSequence, operation, "n", n, "n >= 1")
	}
	return nil
}

// AppendConcat appends every number to an immutable string.
// Each step copies the whole string built so far.
func AppendConcat(n int) (string, error) {
	if err := checkN("AppendConcat", n); err != nil {
		return "", err
	}

	s := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			s += " "
		}
		s += strconv.Itoa(i)
	}
	return s, nil
}

// PrependConcat counts down from n and puts every number in front of an
// immutable string.
func PrependConcat(n int) (string, error) {
	if err := checkN("PrependConcat", n); err != nil {
		return "", err
	}

	s := ""
	for i := n; i >= 1; i-- {
		if i < n {
			s = " " + s
		}
		s = strconv.Itoa(i) + s
	}
	return s, nil
}

// AppendBuilder appends every number to a strings.Builder.
func AppendBuilder(n int) (string, error) {
	if err := checkN("AppendBuilder", n); err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(i))
	}
	return b.String(), nil
}

// PrependBuffer counts down from n and inserts every number at index 0 of
// a byte slice. Every insertion shifts the existing contents.
func PrependBuffer(n int) (string, error) {
	if err := checkN("PrependBuffer", n); err != nil {
		return "", err
	}

	var buf []byte
	for i := n; i >= 1; i-- {
		if i < n {
			buf = slices.Insert(buf, 0, ' ')
		}
		buf = slices.Insert(buf, 0, []byte(strconv.Itoa(i))...)
	}
	return string(buf), nil
}
