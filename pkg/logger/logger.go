package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Logger struct to hold leveled loggers and configuration
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	level       LogLevel
	mutex       sync.Mutex
}

// LogLevel defines the logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Global logger instance
var GlobalLogger = New(os.Stdout, "INFO")
var once sync.Once

// ParseLevel maps a config value to a LogLevel, defaulting to INFO.
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// New builds a standalone logger writing to output.
func New(output io.Writer, level string) *Logger {
	if output == nil {
		output = os.Stdout
	}
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		infoLogger:  log.New(output, color.GreenString("INFO: "), flags),
		warnLogger:  log.New(output, color.YellowString("WARN: "), flags),
		errorLogger: log.New(output, color.RedString("ERROR: "), flags),
		debugLogger: log.New(output, color.BlueString("DEBUG: "), flags),
		level:       ParseLevel(level),
	}
}

// InitLogger replaces the global logger once per process.
func InitLogger(output io.Writer, level string) {
	once.Do(func() {
		GlobalLogger = New(output, level)
	})
}

// Println logs a message at the INFO level
func (l *Logger) Println(v ...interface{}) {
	l.output(INFO, l.infoLogger, "", v...)
}

// Printf logs a formatted message at the INFO level
func (l *Logger) Printf(format string, v ...interface{}) {
	l.output(INFO, l.infoLogger, format, v...)
}

// Warnf logs a formatted message at the WARN level
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(WARN, l.warnLogger, format, v...)
}

// Error logs a message at the ERROR level
func (l *Logger) Error(v ...interface{}) {
	l.output(ERROR, l.errorLogger, "", v...)
}

// Errorf logs a formatted message at the ERROR level
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(ERROR, l.errorLogger, format, v...)
}

// Debugf logs a formatted message at the DEBUG level
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(DEBUG, l.debugLogger, format, v...)
}

func (l *Logger) output(level LogLevel, target *log.Logger, format string, v ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.level > level {
		return
	}
	// calldepth 3 reports the caller of Printf/Errorf, not this helper
	if format == "" {
		_ = target.Output(3, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
		return
	}
	_ = target.Output(3, fmt.Sprintf(format, v...))
}
