package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger is a tagged console logger shared by every component. Each line
// carries a level, a short uppercase tag (PAYMENT, KAFKA, ...) and a message.
type Logger struct {
	mu    sync.Mutex
	file  *os.File
	debug bool
}

var (
	infoColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	debugColor   = color.New(color.FgCyan)
	processColor = color.New(color.FgMagenta)
)

func NewLogger() *Logger {
	l := &Logger{
		debug: os.Getenv("DEBUG") == "true",
	}

	// Optional file sink alongside stdout
	if path := os.Getenv("LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			l.file = f
		}
	}

	return l
}

func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

func (l *Logger) write(level, tag, message string, c *color.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006/01/02 15:04:05")
	line := fmt.Sprintf("%s [%s] [%s] %s", timestamp, level, tag, message)

	if c != nil {
		c.Fprintln(os.Stdout, line)
	} else {
		fmt.Fprintln(os.Stdout, line)
	}

	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
}

func (l *Logger) Info(tag, message string) {
	l.write("INFO", tag, message, infoColor)
}

func (l *Logger) Warn(tag, message string) {
	l.write("WARN", tag, message, warnColor)
}

func (l *Logger) Error(tag, message string) {
	l.write("ERROR", tag, message, errorColor)
}

func (l *Logger) Debug(tag, message string) {
	if !l.debug {
		return
	}
	l.write("DEBUG", tag, message, debugColor)
}

func (l *Logger) Fatal(tag, message string) {
	l.write("FATAL", tag, message, errorColor)
	l.Close()
	os.Exit(1)
}

// LogProcess marks lifecycle steps (startup, shutdown, component init).
func (l *Logger) LogProcess(stage, message string) {
	l.write("PROC", stage, message, processColor)
}

func (l *Logger) LogAPI(method, path, status, duration string) {
	l.write("API", "HTTP", fmt.Sprintf("%s %s - %s (%s)", method, path, status, duration), infoColor)
}

func (l *Logger) LogPayment(action, id, message string) {
	l.write("INFO", "PAYMENT", fmt.Sprintf("[%s] %s: %s", action, id, message), infoColor)
}

func (l *Logger) LogKafka(action, topic, message string) {
	l.write("INFO", "KAFKA", fmt.Sprintf("[%s] %s: %s", action, topic, message), infoColor)
}

func (l *Logger) LogDatabase(action, store, message string) {
	l.write("INFO", "STORE", fmt.Sprintf("[%s] %s: %s", action, store, message), infoColor)
}

func (l *Logger) LogSecurity(event, message string) {
	l.write("WARN", "SECURITY", fmt.Sprintf("[%s] %s", event, message), warnColor)
}
