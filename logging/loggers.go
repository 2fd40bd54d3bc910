package logging

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

// Logger wraps a logrus logger.
type Logger struct {
	*logrus.Logger
}

func newLogger(out io.Writer, level logrus.Level) *Logger {
	l := &Logger{Logger: logrus.New()}
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = level
	loadFunctionHooker(l)
	return l
}

var (
	mu sync.RWMutex
	// clog prints to console and file, vlog to file only.
	clog *Logger
	vlog *Logger
)

func init() {
	clog = newLogger(os.Stderr, logrus.InfoLevel)
	vlog = newLogger(ioutil.Discard, logrus.InfoLevel)
}

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// Init loggers. Log files are written to path, named after filename and
// kept for age years (0 keeps them forever). Console output is dropped
// when disableCPrint is set.
func Init(path, filename string, level string, age uint32, disableCPrint bool) error {
	fileHooker, err := NewFileRotateHooker(path, filename, age, nil)
	if err != nil {
		return err
	}

	lvl := convertLevel(level)
	v := newLogger(ioutil.Discard, lvl)
	v.Hooks.Add(fileHooker)

	var c *Logger
	if disableCPrint {
		c = v
	} else {
		c = newLogger(os.Stdout, lvl)
		c.Hooks.Add(fileHooker)
	}

	mu.Lock()
	clog, vlog = c, v
	mu.Unlock()
	return nil
}

// GetGID returns the id of the calling goroutine.
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into stdout + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	mu.RLock()
	l := clog
	mu.RUnlock()
	output(l, level, msg, formats...)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	mu.RLock()
	l := vlog
	mu.RUnlock()
	output(l, level, msg, formats...)
}

func output(l *Logger, level uint32, msg string, formats ...LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		if data == nil {
			continue
		}
		for k, v := range data {
			vv := v
			format[k] = vv
		}
	}
	format["tid"] = GetGID()
	return format
}
