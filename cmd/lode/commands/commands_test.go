package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/cmd/lode/commands"
	"go.trai.ch/lode/internal/build"
	"go.trai.ch/lode/internal/adapters/config"
	"go.trai.ch/lode/internal/adapters/fs"
	"go.trai.ch/lode/internal/adapters/report"
	"go.trai.ch/lode/internal/adapters/script"
	"go.trai.ch/lode/internal/adapters/telemetry"
	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) *commands.CLI {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	a := app.New(
		script.NewEngine(),
		fs.NewLoader(log),
		fs.NewNormalizer(),
		config.NewLoader(log),
		log,
		telemetry.NewNoOpTracer(),
		report.NewWriter(),
	)
	return commands.New(a)
}

func TestResolve_Success(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lode.yaml"),
		[]byte("version: \"1\"\nentry: main.js\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.js"),
		[]byte(`const x = 1;`), 0o600))

	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", "--workdir", dir})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestResolve_WithReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lode.yaml"),
		[]byte("version: \"1\"\nentry: main.js\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.js"),
		[]byte(`const x = 1;`), 0o600))

	reportPath := filepath.Join(dir, "report.json")

	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", "--workdir", dir, "--report", reportPath})

	require.NoError(t, cli.Execute(context.Background()))

	_, err := os.Stat(reportPath)
	require.NoError(t, err)
}

func TestResolve_MissingEntryFails(t *testing.T) {
	dir := t.TempDir()

	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", "--workdir", dir, "absent.js"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	cli := newCLI(t)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
