package domain

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotcov.dev/pkg/dotcov/internal/adapter"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &buf
}

func TestDotCoverDetector_IsCompatible(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"release version", `<Root DotCoverVersion="2023.3.1"/>`, true},
		{"unexpected value", `<Root DotCoverVersion="not-a-version"/>`, true},
		{"empty value", `<Root DotCoverVersion=""/>`, true},
		{"missing marker", `<Root ReportType="Xml"/>`, false},
		{"other tool", `<CoverageSession xmlns:xsd="http://www.w3.org/2001/XMLSchema"/>`, false},
		{"marker on child only", `<Root><Info DotCoverVersion="1"/></Root>`, false},
	}

	for _, tt := range tests {
		for _, factory := range cursorFactories {
			t.Run(tt.name+"/"+factory.name, func(t *testing.T) {
				root, err := factory.open(strings.NewReader(tt.doc))
				require.NoError(t, err)

				assert.Equal(t, tt.want, NewDotCoverDetector().IsCompatible(root))
			})
		}
	}
}

func TestDotCoverDetector_LogsVersion(t *testing.T) {
	logs := captureLogs(t)

	root, err := adapter.NewStreamCursor(strings.NewReader(`<Root DotCoverVersion="2021.2"/>`))
	require.NoError(t, err)

	require.True(t, NewDotCoverDetector().IsCompatible(root))
	assert.Contains(t, logs.String(), "dotCover format detected")
	assert.Contains(t, logs.String(), "version=2021.2")
}

func TestDotCoverDetector_SilentWhenIncompatible(t *testing.T) {
	logs := captureLogs(t)

	root, err := adapter.NewStreamCursor(strings.NewReader(`<Root/>`))
	require.NoError(t, err)

	require.False(t, NewDotCoverDetector().IsCompatible(root))
	assert.Empty(t, logs.String())
}

func TestDotCoverDetector_Version(t *testing.T) {
	root, err := adapter.NewStreamCursor(strings.NewReader(`<Root DotCoverVersion="2019.1.3"/>`))
	require.NoError(t, err)

	version, ok := NewDotCoverDetector().Version(root)
	assert.True(t, ok)
	assert.Equal(t, "2019.1.3", version)
}

func TestDotCoverDetector_LeavesCursorUsable(t *testing.T) {
	root, err := adapter.NewStreamCursor(strings.NewReader(`<Root DotCoverVersion="1"><File Index="0" Name="a.cs"/><Assembly><Member><Statement Line="1" EndLine="1" Covered="True" FileIndex="0"/></Member></Assembly></Root>`))
	require.NoError(t, err)

	require.True(t, NewDotCoverDetector().IsCompatible(root))

	files, err := newStubParser().Parse(root)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
