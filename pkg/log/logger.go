package log

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, ordered from most to least verbose.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// Logger is the subset of the go-logging API used by the renderer packages.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// sinkState is the active backend; sink and level survive each other's changes
type sinkState struct {
	mu      sync.Mutex
	level   Level
	backend logging.LeveledBackend
}

var state = sinkState{level: Notice}

// New returns the logger for a module name.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all loggers to sink. The verbosity is unchanged.
//
// Log output goes to stderr by default so that stdout stays free for image
// data.
func SetSink(sink io.Writer) {
	state.mu.Lock()
	defer state.mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	state.backend = logging.AddModuleLevel(formatted)
	state.backend.SetLevel(backendLevels[state.level], "")
	logging.SetBackend(state.backend)
}

// SetLevel sets the verbosity of every module. Unknown levels are ignored.
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		return
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	state.level = level
	state.backend.SetLevel(backendLevel, "")
}

// CurrentLevel reports the active verbosity.
func CurrentLevel() Level {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.level
}

func init() {
	SetSink(os.Stderr)
}
