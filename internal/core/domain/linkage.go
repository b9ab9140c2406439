package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// StrategyFailure records why one loading strategy could not load a library.
type StrategyFailure struct {
	Strategy string
	Err      error
}

// LinkageError is returned when every loading strategy failed for a library.
// Its message is the diagnostic report shown to operators.
type LinkageError struct {
	Library  string
	Ambient  Ambient
	Failures []StrategyFailure
}

// NewLinkageError creates a LinkageError.
func NewLinkageError(library string, ambient Ambient, failures []StrategyFailure) *LinkageError {
	return &LinkageError{
		Library:  library,
		Ambient:  ambient,
		Failures: failures,
	}
}

func (e *LinkageError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q\n", ErrLinkageFailure.Error(), e.Library)
	fmt.Fprintf(&b, "Operating system name: %s\n", e.Ambient.OSName)
	fmt.Fprintf(&b, "Architecture         : %s\n", e.Ambient.Arch)
	fmt.Fprintf(&b, "Architecture bit size: %s", e.Ambient.DataModel)

	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n--- strategy %s ---", f.Strategy)
		for _, line := range causeChain(f.Err) {
			b.WriteString("\n  ")
			b.WriteString(line)
		}
	}
	return b.String()
}

// Is reports whether target is ErrLinkageFailure.
func (e *LinkageError) Is(target error) bool {
	return target == ErrLinkageFailure
}

// Unwrap exposes every strategy failure to errors.Is and errors.As.
func (e *LinkageError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// causeChain renders err one level per line. Each zerr level contributes its
// own message followed by its sorted metadata; metadata attached without a
// message moves to the next level. Joined errors are rendered member by member.
func causeChain(err error) []string {
	if err == nil {
		return []string{"<nil>"}
	}
	var lines []string
	for _, level := range causeLevels(err, nil) {
		lines = append(lines, strings.Split(level.message, "\n")...)
		for _, k := range slices.Sorted(maps.Keys(level.metadata)) {
			lines = append(lines, fmt.Sprintf("  %s=%v", k, level.metadata[k]))
		}
	}
	return lines
}

type causeLevel struct {
	message  string
	metadata map[string]any
}

func causeLevels(err error, pending map[string]any) []causeLevel {
	var levels []causeLevel
	for current := err; current != nil; {
		switch e := current.(type) {
		case *zerr.Error:
			pending = mergeMetadata(pending, e.Metadata())
			if e.Message() != "" {
				levels = append(levels, causeLevel{message: e.Message(), metadata: pending})
				pending = nil
			}
			current = e.Unwrap()
		case interface{ Unwrap() []error }:
			for _, member := range e.Unwrap() {
				levels = append(levels, causeLevels(member, pending)...)
				pending = nil
			}
			current = nil
		default:
			levels = append(levels, causeLevel{message: current.Error(), metadata: pending})
			pending = nil
			current = nil
		}
	}
	if len(pending) > 0 && len(levels) > 0 {
		last := &levels[len(levels)-1]
		last.metadata = mergeMetadata(last.metadata, pending)
	}
	return levels
}

func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}
