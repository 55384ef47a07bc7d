package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// 標準出力へのJSONロガー
// 不明なレベルはinfo扱い
func NewLogger(level string) *slog.Logger {
	return New(os.Stdout, level)
}

// 出力先を指定する（テスト用）
func New(w io.Writer, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler)
}

// LOG_LEVELの値をslogのレベルへ
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
