// Modified and adapted from github.com/MichaelS11/go-tetris.git
// Under MIT.
package tetris

import (
	"fmt"
	"io"
	"log"
	"os"
)

// NewLogger opens path for appending and returns an engine logger writing
// to it. An empty path discards everything. Close the returned closer when done.
func NewLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	logFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file error: %w", err)
	}
	logger := log.New(logFile, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
	return logger, logFile, nil
}
