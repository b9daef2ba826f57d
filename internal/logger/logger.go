package logger

import (
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
)

// Log is the internal logger for the debugtools command
var Log core.Logger

func init() {
	Log = mtlog.New(
		mtlog.WithConsole(),
		mtlog.WithMinimumLevel(core.InformationLevel),
	)
}
