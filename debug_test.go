package grove

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLog(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	SetDebug(true)
	t.Cleanup(func() {
		SetLogger(nil)
		SetDebug(false)
	})
	return logs
}

func TestDebugWarnsOnDeepTrees(t *testing.T) {
	logs := observeLog(t)
	parent := NewList(0, NoID)
	for range debugMaxTreeDepth + 5 {
		child := NewList(0, NoID)
		parent.Add(child)
		parent = child
	}
	if got := logs.FilterMessage("tree depth exceeds threshold").Len(); got == 0 {
		t.Error("no depth warning for a deep tree")
	}
}

func TestDebugWarnsOnWideContainers(t *testing.T) {
	logs := observeLog(t)
	l := NewList(0, NoID)
	for range debugMaxChildCount + 5 {
		l.Add(&Node{})
	}
	if got := logs.FilterMessage("container child count exceeds threshold").Len(); got == 0 {
		t.Error("no child count warning for a wide container")
	}
}

func TestDebugOffIsQuiet(t *testing.T) {
	logs := observeLog(t)
	SetDebug(false)
	l := NewList(0, NoID)
	for range debugMaxChildCount + 5 {
		l.Add(&Node{})
	}
	if logs.Len() != 0 {
		t.Errorf("logged %d entries with debug off", logs.Len())
	}
}
