package utils

import (
	"log/slog"
)

// Check panics on errors that leave the process unable to run at all.
func Check(e error, msg string) {
	if e != nil {
		slog.Error(msg, "error", e)
		panic(e)
	}
}

func Loge(e error, msg string, args ...any) {
	if e != nil {
		slog.Error(msg, append(args, "error", e)...)
	}
}

func Logwe(e error, msg string, args ...any) {
	if e != nil {
		slog.Warn(msg, append(args, "error", e)...)
	}
}

func Logie(e error, msg string, args ...any) {
	if e != nil {
		slog.Info(msg, append(args, "error", e)...)
	}
}

func Logde(e error, msg string, args ...any) {
	if e != nil {
		slog.Debug(msg, append(args, "error", e)...)
	}
}
