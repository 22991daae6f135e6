package config

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger points the standard logger (and returns a writer for the
// HTTP request log) at stdout, adding a size-rotated file when LogFile
// is configured.
func SetupLogger(cfg Config) io.Writer {
	writers := []io.Writer{os.Stdout}

	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   true,
		})
	}

	writer := io.MultiWriter(writers...)
	log.SetOutput(writer)
	return writer
}
