package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var f *os.File

// Init opens the debug log file when `LOG_DEBUG` is set; without it the
// logger stays disabled and Write is a no-op. The log directory can be
// overridden with `LOG_DIRECTORY`.
func Init() error {
	if os.Getenv("LOG_DEBUG") == "" {
		return nil
	}

	dir := os.TempDir()
	if os.Getenv("LOG_DIRECTORY") != "" {
		dir = os.Getenv("LOG_DIRECTORY")
	}

	cleanStaleLogs(dir)

	var err error
	f, err = os.OpenFile(filepath.Join(dir, fmt.Sprintf("manifest-pr-%s.log", time.Now().Format("2006-01-02"))), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %s", err)
	}

	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(f)

	return nil
}

// Write writes a message to the debug log
func Write(msg string) {
	if f == nil {
		return
	}
	log.Println(msg)
}

// Close the *os.File connection for the logger
func Close() {
	if f != nil {
		f.Close()
		f = nil
	}
}
