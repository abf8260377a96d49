package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerLevelsAndFields(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := NewDefaultLoggerWithWriters(&stdout, &stderr)

	l.Debug("hidden")
	assert.Empty(t, stdout.String())

	l.WithFields(Fields{"transform": "st", "num": 4}).Info("bank built", Fields{"fft_length": 16})
	assert.Contains(t, stdout.String(), "[INFO] bank built fft_length=16 num=4 transform=st")

	l.Error(errors.New("boom"), "failed")
	assert.Contains(t, stderr.String(), "[ERROR] failed: boom")
}

func TestDefaultLoggerWithContext(t *testing.T) {
	var stdout bytes.Buffer
	l := NewDefaultLoggerWithWriters(&stdout, &stdout)
	l.SetLevel(DebugLevel)

	ctx := ContextWithFields(context.Background(), Fields{"worker": 2})
	l.WithContext(ctx).Debug("row done")
	assert.Contains(t, stdout.String(), "worker=2")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, InfoLevel, ParseLevel("nonsense"))
	assert.Equal(t, "ERROR", ErrorLevel.String())
}

func TestZapLoggerForwardsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapLogger(zap.New(core))

	l.WithFields(Fields{"transform": "pwt"}).Warn("empty filter", Fields{"row": 3})
	l.SetLevel(ErrorLevel)
	l.Warn("filtered out")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "pwt", ctx["transform"])
		assert.EqualValues(t, 3, ctx["row"])
	}
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	_, ok := GetGlobalLogger().(*NoOpLogger)
	assert.True(t, ok)
}
