package internal

import (
	"fmt"
	"log"
	"time"

	"sermepa/services"
)

// Logger writes messages to stdout and, when a database is attached, persists
// them through the log sink.
type Logger struct {
	module string
	debug  bool
	db     services.Database
}

type logRecord struct {
	Time   time.Time `json:"time" bson:"time"`
	Level  string    `json:"level" bson:"level"`
	Module string    `json:"module" bson:"module"`
	Text   string    `json:"text" bson:"text"`
}

func (r *logRecord) DataType() string {
	return "log"
}

func NewLogger(module string, isDebug bool, db services.Database) *Logger {
	return &Logger{
		module: module,
		debug:  isDebug,
		db:     db,
	}
}

func (l *Logger) Debug(text string) {
	if !l.debug {
		return
	}
	l.write("DEBUG", text)
}

func (l *Logger) Info(text string) {
	l.write("INFO", text)
}

func (l *Logger) Warn(text string) {
	l.write("WARN", text)
}

func (l *Logger) Error(text string, err error) {
	if err != nil {
		text = fmt.Sprintf("%s: %v", text, err)
	}
	l.write("ERROR", text)
}

func (l *Logger) write(level, text string) {
	log.Printf("%s\t%s: %s", level, l.module, text)
	if l.db != nil {
		record := &logRecord{
			Time:   time.Now(),
			Level:  level,
			Module: l.module,
			Text:   text,
		}
		_ = l.db.WriteLogMessage(record)
	}
}
