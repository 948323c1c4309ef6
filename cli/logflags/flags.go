// Package logflags registers the -log.* flags shared by the bon commands.
// The decoder logs each rejected input at debug level, so "-log.level
// debug" traces decode failures.
package logflags

import (
	"flag"

	"github.com/brimdata/bon/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultLevel = zapcore.WarnLevel
	DefaultPath  = "stderr"
	DefaultMode  = logger.FileModeAppend
)

type Flags struct {
	Config logger.Config
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Config.Level = DefaultLevel
	f.Config.Mode = DefaultMode
	fs.Var(&f.Config.Level, "log.level", "lowest level logged [debug,info,warn,error]")
	fs.StringVar(&f.Config.Path, "log.path", DefaultPath, "log destination: stderr, stdout or a file path")
	fs.Var(&f.Config.Mode, "log.filemode", "how a log file is opened [append,truncate,rotate]")
	fs.BoolVar(&f.Config.DevMode, "log.devmode", false, "log in development mode, where DPanic level panics")
}

// Open returns the logger described by the parsed flags.
func (f *Flags) Open() (*zap.Logger, error) {
	return logger.New(f.Config)
}
