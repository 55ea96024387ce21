package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/voltdev/internal/adapters/cmake"
	"go.trai.ch/voltdev/internal/adapters/cmakecache"
	"go.trai.ch/voltdev/internal/adapters/fs"
	"go.trai.ch/voltdev/internal/adapters/telemetry"
	"go.trai.ch/voltdev/internal/app"
	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports/mocks"
	"go.trai.ch/voltdev/internal/engine/formatter"
	"go.trai.ch/voltdev/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	app      *app.App
	root     string
	settings domain.Settings
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		root:     t.TempDir(),
	}
	h.settings = domain.DefaultSettings(h.root)

	hasher := fs.NewHasher()
	f := formatter.New(fs.NewWalker(), hasher, h.executor, h.logger, telemetry.Noop{})
	h.app = app.New(h.loader, h.executor, cmakecache.NewLocator(cmakecache.PrefixParser{}),
		hasher, h.logger, telemetry.Noop{}, f).WithOutput(io.Discard, io.Discard)
	return h
}

func (h *harness) writeCache(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(h.root, "build"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "build", "CMakeCache.txt"), []byte(content), 0o600))
}

func TestApp_Run_Success(t *testing.T) {
	h := newHarness(t)
	h.writeCache(t, "CMAKE_PROJECT_NAME:STATIC=Foo\n")
	layout := h.settings.Layout
	platform := domain.NewPlatform("linux")
	tc := domain.SelectToolchain(domain.ModeDefault)
	compile := pipeline.CompilerInvocation(layout, "Foo", platform)

	h.loader.EXPECT().Load(h.root, "voltdev.yaml").Return(&h.settings, nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	gomock.InOrder(
		h.executor.EXPECT().Execute(gomock.Any(), cmake.ConfigureCommand(cmake.Options{}, layout, tc), io.Discard, io.Discard).
			Return(domain.ExecResult{}),
		h.executor.EXPECT().Execute(gomock.Any(), cmake.BuildCommand(cmake.Options{}, layout), io.Discard, io.Discard).
			Return(domain.ExecResult{}),
		h.executor.EXPECT().Execute(gomock.Any(), compile, io.Discard, io.Discard).
			DoAndReturn(func(context.Context, domain.Command, io.Writer, io.Writer) domain.ExecResult {
				require.NoError(t, os.WriteFile(filepath.Join(h.root, "test.o"), []byte("\x7fELF"), 0o600))
				return domain.ExecResult{Command: compile}
			}),
	)

	report, err := h.app.Run(context.Background(), app.RunOptions{
		Mode:       "GCC",
		Root:       h.root,
		ConfigPath: "voltdev.yaml",
		GOOS:       "linux",
		NoClear:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Foo", report.ProjectName)
	assert.Equal(t, filepath.Join(h.root, "build", "Foo"), report.Binary)
	assert.Equal(t, filepath.Join(h.root, "test.o"), report.Artifact)
	assert.Len(t, report.ArtifactDigest, 16)
}

func TestApp_Run_MSVCOnWindows(t *testing.T) {
	h := newHarness(t)
	h.writeCache(t, "CMAKE_GENERATOR:INTERNAL=Visual Studio 17\n")
	h.settings.ClearScreen = false
	layout := h.settings.Layout
	platform := domain.NewPlatform("windows")
	compile := pipeline.CompilerInvocation(layout, filepath.Base(h.root), platform)

	h.loader.EXPECT().Load(h.root, "").Return(&h.settings, nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn("artifact not digested", "path", filepath.Join(h.root, "test.obj"), "error", gomock.Any())
	gomock.InOrder(
		h.executor.EXPECT().Execute(gomock.Any(),
			cmake.ConfigureCommand(cmake.Options{}, layout, domain.SelectToolchain(domain.ModeMSVC)), gomock.Any(), gomock.Any()).
			Return(domain.ExecResult{}),
		h.executor.EXPECT().Execute(gomock.Any(), cmake.BuildCommand(cmake.Options{}, layout), gomock.Any(), gomock.Any()).
			Return(domain.ExecResult{}),
		h.executor.EXPECT().Execute(gomock.Any(), compile, gomock.Any(), gomock.Any()).
			Return(domain.ExecResult{}),
	)

	report, err := h.app.Run(context.Background(), app.RunOptions{Mode: "MSVC", Root: h.root, GOOS: "windows"})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeMSVC, report.Mode)
	assert.Equal(t, filepath.Base(h.root), report.ProjectName)
	assert.Equal(t, filepath.Join(h.root, "build", filepath.Base(h.root)+".exe"), report.Binary)
}

func TestApp_Run_ConfigureFailure(t *testing.T) {
	h := newHarness(t)
	h.settings.ClearScreen = false

	h.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&h.settings, nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ExecResult{ExitCode: 1, Err: errors.New("exit status 1")}).Times(1)

	_, err := h.app.Run(context.Background(), app.RunOptions{Root: h.root})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigureFailed))
	assert.True(t, errors.Is(err, domain.ErrBuildExecutionFailed))
}

func TestApp_Run_StrictFromSettings(t *testing.T) {
	h := newHarness(t)
	h.writeCache(t, "CMAKE_PROJECT_NAME:STATIC=volt\n")
	h.settings.ClearScreen = false
	h.settings.StrictCompile = true

	h.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&h.settings, nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	gomock.InOrder(
		h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ExecResult{}).Times(2),
		h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ExecResult{ExitCode: 3, Err: errors.New("exit status 3")}),
	)

	report, err := h.app.Run(context.Background(), app.RunOptions{Root: h.root, GOOS: "linux"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompilerFailed))
	assert.Equal(t, 3, report.Compile.ExitCode)
}

func TestApp_Run_LoadError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConfigParseFailed)

	_, err := h.app.Run(context.Background(), app.RunOptions{Root: h.root})
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Format(t *testing.T) {
	h := newHarness(t)
	for _, f := range []string{"src/a.c", "src/b.txt", "build/gen.c"} {
		path := filepath.Join(h.root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("int a;\n"), 0o600))
	}
	target := filepath.Join(h.root, "src")

	h.loader.EXPECT().Load(h.root, "").Return(&h.settings, nil)
	gomock.InOrder(
		h.logger.EXPECT().Info("Formatting a.c"),
		h.executor.EXPECT().Execute(gomock.Any(), formatter.Invocation(target, "a.c", h.settings.Formatter), io.Discard, io.Discard).
			Return(domain.ExecResult{}),
		h.logger.EXPECT().Info("Formatted 1 files (0 changed, 0 failed)"),
	)

	report, err := h.app.Format(context.Background(), app.FormatOptions{Root: h.root, Path: "src"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c"}, report.Matched)
}

func TestApp_Format_FailuresWarn(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "main.cpp"), []byte("int main(){}\n"), 0o600))

	h.loader.EXPECT().Load(h.root, "").Return(&h.settings, nil)
	h.logger.EXPECT().Info("Formatting main.cpp")
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ExecResult{ExitCode: -1, Err: errors.New("executable file not found in $PATH")})
	h.logger.EXPECT().Error(gomock.Any())
	h.logger.EXPECT().Warn("Formatted 1 files (0 changed, 1 failed)")

	report, err := h.app.Format(context.Background(), app.FormatOptions{Root: h.root})
	require.NoError(t, err)
	assert.Equal(t, []string{"main.cpp"}, report.Failed)
}

func TestApp_Format_ExcludedTarget(t *testing.T) {
	h := newHarness(t)
	gen := filepath.Join(h.root, "build", "gen")
	require.NoError(t, os.MkdirAll(gen, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(gen, "gen.c"), []byte("int a;\n"), 0o600))

	h.loader.EXPECT().Load(h.root, "").Return(&h.settings, nil)
	h.logger.EXPECT().Warn("path is excluded from formatting", "path", filepath.Join("build", "gen"))
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := h.app.Format(context.Background(), app.FormatOptions{Root: h.root, Path: "build/gen"})
	require.NoError(t, err)
	assert.Empty(t, report.Matched)
}
