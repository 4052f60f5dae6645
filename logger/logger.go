package logger

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LogLevel string

const (
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

const (
	EventServiceStartup    = "SERVICE_STARTUP"
	EventServiceShutdown   = "SERVICE_SHUTDOWN"
	EventSeedLoaded        = "SEED_LOADED"
	EventHTTPRequest       = "HTTP_REQUEST"
	EventValidationFailure = "VALIDATION_FAILURE"
	EventNotFound          = "NOT_FOUND"
	EventRateLimited       = "RATE_LIMITED"
	EventGeneral           = "GENERAL"
)

type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     LogLevel       `json:"level"`
	Service   string         `json:"service"`
	EventType string         `json:"event_type"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Hmac      string         `json:"hmac"`
}

type Config struct {
	ServiceName string
	Environment string
	LogFilePath string
	HMACKey     string
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
}

type Logger struct {
	config  Config
	writer  io.Writer
	closer  io.Closer
	hmacKey []byte
	mu      sync.Mutex
}

var sensitiveFields = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"token":         true,
	"secret":        true,
	"password":      true,
}

var stackTraceIndicators = []string{
	"goroutine ",
	"\truntime/",
	"\tnet/http/",
	"\tgithub.com/gin-gonic/",
	"runtime.goexit",
	"panic(",
}

var (
	instance   *Logger
	instanceMu sync.RWMutex
)

func Init(cfg Config) {
	l := NewLogger(cfg)
	instanceMu.Lock()
	instance = l
	instanceMu.Unlock()
}

// SetLogger replaces the package-level logger. Used by tests.
func SetLogger(l *Logger) {
	instanceMu.Lock()
	instance = l
	instanceMu.Unlock()
}

func GetLogger() *Logger {
	instanceMu.RLock()
	l := instance
	instanceMu.RUnlock()
	if l != nil {
		return l
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance = NewLoggerWithWriter(Config{ServiceName: "band-service", Environment: "development"}, os.Stdout)
	}
	return instance
}

func applyDefaults(cfg Config) Config {
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 100
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 30
	}
	if cfg.LogFilePath == "" {
		cfg.LogFilePath = fmt.Sprintf("/var/log/%s/app.log", cfg.ServiceName)
	}
	if cfg.HMACKey == "" {
		cfg.HMACKey = "default-hmac-key-change-in-production"
	}
	return cfg
}

// NewLogger writes to stdout and, when the log directory is usable, to a rotating file.
func NewLogger(cfg Config) *Logger {
	cfg = applyDefaults(cfg)

	writers := []io.Writer{os.Stdout}
	var closer io.Closer

	logDir := filepath.Dir(cfg.LogFilePath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Cannot create log directory %s: %v, using stdout only\n", logDir, err)
	} else {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		writers = append(writers, fileWriter)
		closer = fileWriter
	}

	return &Logger{
		config:  cfg,
		writer:  io.MultiWriter(writers...),
		closer:  closer,
		hmacKey: []byte(cfg.HMACKey),
	}
}

// NewLoggerWithWriter skips the file sink entirely.
func NewLoggerWithWriter(cfg Config, w io.Writer) *Logger {
	cfg = applyDefaults(cfg)
	return &Logger{
		config:  cfg,
		writer:  w,
		hmacKey: []byte(cfg.HMACKey),
	}
}

// Close flushes and closes the rotating file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) log(level LogLevel, eventType, message string, details map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Service:   l.config.ServiceName,
		EventType: eventType,
		Message:   l.sanitizeString(message),
		Details:   l.sanitizeDetails(details),
	}
	entry.Hmac = l.computeHMAC(entry)

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal log entry: %v\n", err)
		return
	}

	l.writer.Write(append(data, '\n'))
}

func (l *Logger) Info(eventType, message string, details map[string]any) {
	l.log(LevelInfo, eventType, message, details)
}

func (l *Logger) Warn(eventType, message string, details map[string]any) {
	l.log(LevelWarn, eventType, message, details)
}

func (l *Logger) Error(eventType, message string, details map[string]any) {
	l.log(LevelError, eventType, message, details)
}

func (l *Logger) Fatal(eventType, message string, details map[string]any) {
	l.log(LevelError, eventType, message, details)
	os.Exit(1)
}

// Verify reports whether entry still carries the HMAC this logger would compute.
func (l *Logger) Verify(entry LogEntry) bool {
	want := l.computeHMAC(entry)
	return hmac.Equal([]byte(want), []byte(entry.Hmac))
}

func Info(eventType, message string, details map[string]any) {
	GetLogger().Info(eventType, message, details)
}
func Warn(eventType, message string, details map[string]any) {
	GetLogger().Warn(eventType, message, details)
}
func Error(eventType, message string, details map[string]any) {
	GetLogger().Error(eventType, message, details)
}
func Fatal(eventType, message string, details map[string]any) {
	GetLogger().Fatal(eventType, message, details)
}

func Fields(kv ...any) map[string]any {
	details := make(map[string]any)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		details[key] = kv[i+1]
	}
	return details
}

func (l *Logger) computeHMAC(entry LogEntry) string {
	data := fmt.Sprintf("%s|%s|%s|%s|%s", entry.Timestamp, entry.Level, entry.Service, entry.EventType, entry.Message)
	mac := hmac.New(sha256.New, l.hmacKey)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func (l *Logger) sanitizeDetails(details map[string]any) map[string]any {
	if details == nil {
		return nil
	}
	sanitized := make(map[string]any, len(details))
	for k, v := range details {
		sanitized[k] = l.sanitizeValue(k, v)
	}
	return sanitized
}

func (l *Logger) sanitizeValue(key string, value any) any {
	if sensitiveFields[strings.ToLower(key)] {
		return "[REDACTED]"
	}
	switch v := value.(type) {
	case string:
		return l.sanitizeString(v)
	case map[string]any:
		return l.sanitizeDetails(v)
	default:
		return v
	}
}

func (l *Logger) sanitizeString(s string) string {
	if l.config.Environment == "production" {
		return removeStackTraces(s)
	}
	return s
}

func removeStackTraces(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	filtered := lines[:0]
	for _, line := range lines {
		isStackTrace := false
		for _, pattern := range stackTraceIndicators {
			if strings.Contains(line, pattern) {
				isStackTrace = true
				break
			}
		}
		if !isStackTrace {
			filtered = append(filtered, line)
		}
	}
	return strings.Join(filtered, "\n")
}
