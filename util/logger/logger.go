package logger

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path"
	"path/filepath"

	"github.com/op/go-logging"
)

/*
InitLogger creates and returns a logger suitable for logging
human-readable message. Also returns the path to the log file,
which is empty when logDir is empty and the logger writes to
stderr.
*/
func InitLogger(logDir string, logLevel logging.Level) (*logging.Logger, string) {
	processName := path.Base(os.Args[0])
	var writer io.Writer = os.Stderr
	filename := ""
	if logDir != "" {
		filename = filepath.Join(logDir, fmt.Sprintf("%s.log", processName))
		file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open log file '%s': %v\n", filename, err)
			os.Exit(1)
		}
		writer = file
	}
	log := logging.MustGetLogger(processName)
	format := logging.MustStringFormatter("[%{level}] %{message}")
	logging.SetFormatter(format)
	logBackend := logging.NewLogBackend(writer, "", stdlog.LstdFlags|stdlog.LUTC)
	leveled := logging.AddModuleLevel(logBackend)
	leveled.SetLevel(logLevel, "")
	logging.SetBackend(leveled)
	return log, filename
}

// ParseLevel converts a level name like "DEBUG" or "warning" to a
// logging.Level, defaulting to INFO for names it does not know.
func ParseLevel(name string) logging.Level {
	level, err := logging.LogLevel(name)
	if err != nil {
		return logging.INFO
	}
	return level
}
