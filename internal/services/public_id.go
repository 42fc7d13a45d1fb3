package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// NextPublicID increments the numeric suffix of last and pads it to width.
// An empty last, or one that is not prefix followed by digits, counts as zero.
func NextPublicID(prefix string, width int, last string) string {
	n := 0
	if rest, ok := strings.CutPrefix(last, prefix); ok && rest != "" {
		if v, err := strconv.Atoi(rest); err == nil && v >= 0 && isDigits(rest) {
			n = v
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, n+1)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type lastIDSource interface {
	LastPublicID(ctx context.Context) (string, error)
}

// generatePublicID reads the newest row's id and derives the next one. Two
// concurrent callers can get the same value; the second insert then fails
// with a conflict.
func generatePublicID(ctx context.Context, repo lastIDSource, prefix string, width int) (string, error) {
	last, err := repo.LastPublicID(ctx)
	if err != nil {
		return "", err
	}
	return NextPublicID(prefix, width, last), nil
}
