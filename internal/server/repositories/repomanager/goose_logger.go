package repomanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/pressly/goose/v3"
)

// osExit is a seam for testing gooseLogger.Fatalf.
var osExit = os.Exit

// gooseLogger adapts logging.Logger to goose.Logger.
type gooseLogger struct {
	l logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
	osExit(1)
}

// SetMigrationLogger routes goose output through l. goose keeps a single
// process-wide logger.
func SetMigrationLogger(l logging.Logger) {
	goose.SetLogger(gooseLogger{l: l.With("module", "migrations")})
}
