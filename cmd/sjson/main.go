// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program sjson inspects and validates SJSON documents, and compiles script
// resources using a compiler described by an SJSON configuration.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levelMap = map[string]zapcore.Level{
	"DEBUG": zapcore.DebugLevel,
	"INFO":  zapcore.InfoLevel,
	"WARN":  zapcore.WarnLevel,
	"ERROR": zapcore.ErrorLevel,
}

var log = zap.NewNop().Sugar()

func main() {
	err := newRootCmd().Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sjson: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "sjson",
		Short:         "Inspect SJSON documents and compile resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			log = logger.Sugar()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	root.AddCommand(getCmd(), keysCmd(), checkCmd(), idCmd(), compileCmd())
	return root
}

// newLogger returns a console logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	zapLevel, ok := levelMap[strings.ToUpper(level)]
	if !ok {
		return nil, fmt.Errorf("illegal log level: %q", level)
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = "|"
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), zapLevel)
	return zap.New(core), nil
}
