package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "doomdash.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to dir/file when debug is on and discards it otherwise
// The terminal belongs to tcell, so log output never goes to stdout or stderr
// An oversized previous log is rotated to a timestamped name
func setupLogging(debug bool, dir, file string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if dir == "" {
		dir = logDir
	}
	if file == "" {
		file = logFileName
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, file)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(file)
		rotated := fmt.Sprintf("%s-%s%s", file[:len(file)-len(ext)], time.Now().Format("20060102-150405"), ext)
		_ = os.Rename(path, filepath.Join(dir, rotated))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== doomdash sandbox started ===")
	return f
}
