package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// debugLogf appends a line to $TASKDASH_DEBUG_LOG when set. Transport errors
// are logged here because stderr is not usable while the alt screen is up.
func debugLogf(format string, args ...any) {
	path := strings.TrimSpace(os.Getenv("TASKDASH_DEBUG_LOG"))
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().Format(time.RFC3339)}, args...)...)
}
