package logging

import (
	"io"
	"log"
	"os"
)

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf("debug: "+format, args...)
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		log.Println(append([]interface{}{"debug:"}, args...)...)
	}
}

// Infof logs an informational message when verbose output was requested
func Infof(format string, args ...interface{}) {
	if verbose || DebugEnabled() {
		log.Printf("info: "+format, args...)
	}
}

// Warnf always logs a warning
func Warnf(format string, args ...interface{}) {
	log.Printf("warn: "+format, args...)
}

// Errorf always logs an error. Failed operations are reported here and
// otherwise continue.
func Errorf(format string, args ...interface{}) {
	log.Printf("error: "+format, args...)
}

var verbose bool

// SetVerbose turns Infof output on or off.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput redirects every level to w
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// OpenFile appends log output to path. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
