package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/testds/logger"
	"github.com/jetsetilly/testds/test"
)

func TestLog(t *testing.T) {
	logger.Log(logger.Allow, "test", "single line")
	logger.Logf(logger.Allow, "test", "formatted %d", 100)

	// multiline details become one entry per line
	logger.Log(logger.Allow, "test", "first\nsecond")

	var b strings.Builder
	logger.Tail(&b, 4)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	test.ExpectEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[0], "test: single line")
	test.ExpectEquality(t, lines[1], "test: formatted 100")
	test.ExpectEquality(t, lines[2], "test: first")
	test.ExpectEquality(t, lines[3], "test: second")
}
