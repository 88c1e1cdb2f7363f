package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

//ParseLevel accepts level names in any letter case.
func ParseLevel(s string) (Level, bool) {
	lvl := Level(strings.ToLower(strings.TrimSpace(s)))
	_, ok := levelsMapping[lvl]
	return lvl, ok
}

func (l Level) IsValid() bool {
	_, ok := levelsMapping[Level(strings.ToLower(string(l)))]
	return ok
}

func (l Level) zapLevel() zapcore.Level {
	if zl, ok := levelsMapping[Level(strings.ToLower(string(l)))]; ok {
		return zl
	}
	return zap.InfoLevel
}

var levelsMapping = map[Level]zapcore.Level{
	DebugLevel: zap.DebugLevel,
	InfoLevel:  zap.InfoLevel,
	WarnLevel:  zap.WarnLevel,
	ErrorLevel: zap.ErrorLevel,
}
