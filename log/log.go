package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// The loggers discard output until Initialize is called, so packages can log
// from tests without any setup.
var (
	WarningLog = log.New(io.Discard, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	InfoLog    = log.New(io.Discard, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog   = log.New(io.Discard, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)
)

var logFileName = filepath.Join(os.TempDir(), "codeslides.log")

var globalLogFile *os.File

// FileName returns the path of the log file.
func FileName() string {
	return logFileName
}

// Initialize should be called once at the beginning of the program to set up logging.
// defer Close() after calling this function. The terminal belongs to the UI, so
// everything goes to a file in the os temp directory.
func Initialize(verbose bool) error {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	if verbose {
		flags |= log.Lmicroseconds
	}

	InfoLog = log.New(f, "INFO:", flags)
	WarningLog = log.New(f, "WARNING:", flags)
	ErrorLog = log.New(f, "ERROR:", flags)

	globalLogFile = f
	return nil
}

// Close flushes the log file. Safe to call when Initialize failed.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
}
