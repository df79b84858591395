package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// renderReviewFlag formats a needs-review marker, colorized on terminals.
func renderReviewFlag(needsReview bool, colorize bool) string {
	if !needsReview {
		if colorize {
			return ansiGreen + "ok" + ansiReset
		}
		return "ok"
	}
	if colorize {
		return ansiYellow + "review" + ansiReset
	}
	return "review"
}

// renderConfidence formats an overall score with a review marker appended
// when it falls below threshold.
func renderConfidence(overall, threshold int) string {
	if overall < threshold {
		return fmt.Sprintf("%d (below %d)", overall, threshold)
	}
	return fmt.Sprintf("%d", overall)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
