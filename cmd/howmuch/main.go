package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rytavi/howmuch/app"
	"github.com/rytavi/howmuch/internal/pathutil"
	"github.com/rytavi/howmuch/internal/static"
)

const envDebug = "HOWMUCH_DEBUG"

func initLogger() {
	level := slog.LevelInfo
	if _, ok := os.LookupEnv(envDebug); ok {
		level = slog.LevelDebug
	}

	l := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger := slog.New(slog.NewJSONHandler(l, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}

func run(args []string) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	initLogger()

	if err := static.Install(); err != nil {
		slog.Warn("unable to install static files", slog.Any("error", err))
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
