package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	logrusPackage   = "github.com/sirupsen/logrus."
	loggingPackage  = "massnet.org/sha256sum/logging."
	maxCallerFrames = 3
)

// functionHooker annotates entries with the calling function. Entries at
// error level and above carry a short call chain instead of one frame.
type functionHooker struct{}

func shortFuncName(fname string) string {
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		return fname[index+1:]
	}
	return fname
}

func isLoggerFrame(f runtime.Frame) bool {
	if strings.HasPrefix(f.Function, logrusPackage) {
		return true
	}
	return strings.HasPrefix(f.Function, loggingPackage) && !strings.HasSuffix(f.File, "_test.go")
}

// callers returns up to max frames above the logging call.
func callers(max int) []runtime.Frame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []runtime.Frame
	for {
		f, more := frames.Next()
		if !isLoggerFrame(f) {
			out = append(out, f)
			if len(out) == max {
				break
			}
		}
		if !more {
			break
		}
	}
	return out
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	if entry.Level <= logrus.ErrorLevel {
		for i, f := range callers(maxCallerFrames) {
			entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(f.File), shortFuncName(f.Function), f.Line)
		}
		return nil
	}

	frames := callers(1)
	if len(frames) == 0 {
		return nil
	}
	entry.Data["func"] = shortFuncName(frames[0].Function)
	entry.Data["line"] = frames[0].Line
	entry.Data["file"] = filepath.Base(frames[0].File)
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

func loadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{})
}
