package formatter_test

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/voltdev/internal/adapters/fs"
	"go.trai.ch/voltdev/internal/adapters/telemetry"
	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports/mocks"
	"go.trai.ch/voltdev/internal/engine/formatter"
	"go.uber.org/mock/gomock"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o600))
	}
}

func seq(paths ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if !yield(p, nil) {
				return
			}
		}
	}
}

func TestFormatter_Format(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	writeTree(t, root,
		"build/gen.cpp",
		"include/a.hpp",
		"notes.txt",
		"src/main.cpp",
		"src/util.c",
		"src/util.h",
		"src/vendor/x.h",
		"vendor/lib.c",
	)

	settings := domain.DefaultSettings(root).Formatter
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	rel := filepath.FromSlash
	gomock.InOrder(
		logger.EXPECT().Info("Formatting "+rel("include/a.hpp")),
		executor.EXPECT().Execute(gomock.Any(), formatter.Invocation(root, rel("include/a.hpp"), settings), io.Discard, io.Discard).
			Return(domain.ExecResult{ExitCode: 1, Err: errors.New("exit status 1")}),
		logger.EXPECT().Error(gomock.Any()),
		logger.EXPECT().Info("Formatting "+rel("src/main.cpp")),
		executor.EXPECT().Execute(gomock.Any(), formatter.Invocation(root, rel("src/main.cpp"), settings), io.Discard, io.Discard).
			DoAndReturn(func(context.Context, domain.Command, io.Writer, io.Writer) domain.ExecResult {
				require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.cpp"), []byte("int x;\n\n"), 0o600))
				return domain.ExecResult{}
			}),
		logger.EXPECT().Info("Formatting "+rel("src/util.c")),
		executor.EXPECT().Execute(gomock.Any(), formatter.Invocation(root, rel("src/util.c"), settings), io.Discard, io.Discard).
			Return(domain.ExecResult{}),
		logger.EXPECT().Info("Formatting "+rel("src/util.h")),
		executor.EXPECT().Execute(gomock.Any(), formatter.Invocation(root, rel("src/util.h"), settings), io.Discard, io.Discard).
			Return(domain.ExecResult{}),
	)

	f := formatter.New(fs.NewWalker(), fs.NewHasher(), executor, logger, telemetry.Noop{})
	f.SetOutput(io.Discard, io.Discard)

	report, err := f.Format(context.Background(), root, settings)
	require.NoError(t, err)

	assert.Equal(t, []string{rel("include/a.hpp"), rel("src/main.cpp"), rel("src/util.c"), rel("src/util.h")}, report.Matched)
	assert.Equal(t, []string{rel("src/main.cpp")}, report.Changed)
	assert.Equal(t, []string{rel("include/a.hpp")}, report.Failed)
}

func TestFormatter_Format_FilterAppliesToEveryComponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	walker := mocks.NewMockSourceWalker(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	settings := domain.DefaultSettings("/w").Formatter
	walker.EXPECT().WalkFiles("/w", settings.Filter.ExcludeDirs).Return(seq(
		"lib/build/gen.cpp",
		"a/b/vendor/c/d.h",
		"src/ok.c",
		"src/ok.cc",
	))
	hasher.EXPECT().HashFile(filepath.Join("/w", "src/ok.c")).Return("a", nil).Times(2)
	logger.EXPECT().Info("Formatting src/ok.c")
	executor.EXPECT().Execute(gomock.Any(), formatter.Invocation("/w", "src/ok.c", settings), gomock.Any(), gomock.Any()).
		Return(domain.ExecResult{})

	report, err := formatter.New(walker, hasher, executor, logger, telemetry.Noop{}).
		Format(context.Background(), "/w", settings)

	require.NoError(t, err)
	assert.Equal(t, []string{"src/ok.c"}, report.Matched)
	assert.Empty(t, report.Changed)
	assert.Empty(t, report.Failed)
}

func TestFormatter_Format_HashFailureContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	walker := mocks.NewMockSourceWalker(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	settings := domain.DefaultSettings("/w").Formatter

	walker.EXPECT().WalkFiles(gomock.Any(), gomock.Any()).Return(seq("gone.c", "ok.h"))
	logger.EXPECT().Info(gomock.Any()).Times(2)
	hasher.EXPECT().HashFile(filepath.Join("/w", "gone.c")).Return("", domain.ErrFileOpenFailed)
	logger.EXPECT().Error(domain.ErrFileOpenFailed)
	hasher.EXPECT().HashFile(filepath.Join("/w", "ok.h")).Return("1", nil)
	executor.EXPECT().Execute(gomock.Any(), formatter.Invocation("/w", "ok.h", settings), gomock.Any(), gomock.Any()).
		Return(domain.ExecResult{})
	hasher.EXPECT().HashFile(filepath.Join("/w", "ok.h")).Return("2", nil)

	report, err := formatter.New(walker, hasher, executor, logger, telemetry.Noop{}).
		Format(context.Background(), "/w", settings)

	require.NoError(t, err)
	assert.Equal(t, []string{"gone.c", "ok.h"}, report.Matched)
	assert.Equal(t, []string{"ok.h"}, report.Changed)
	assert.Equal(t, []string{"gone.c"}, report.Failed)
}

func TestFormatter_Format_UnreadableDirectoryContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	walker := mocks.NewMockSourceWalker(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	settings := domain.DefaultSettings("/w").Formatter

	walker.EXPECT().WalkFiles(gomock.Any(), gomock.Any()).Return(func(yield func(string, error) bool) {
		if !yield("locked", domain.ErrDirUnreadable) {
			return
		}
		yield("main.c", nil)
	})
	logger.EXPECT().Warn("skipped unreadable directory", "path", "locked", "error", domain.ErrDirUnreadable.Error())
	logger.EXPECT().Info("Formatting main.c")
	hasher.EXPECT().HashFile(filepath.Join("/w", "main.c")).Return("1", nil).Times(2)
	executor.EXPECT().Execute(gomock.Any(), formatter.Invocation("/w", "main.c", settings), gomock.Any(), gomock.Any()).
		Return(domain.ExecResult{})

	report, err := formatter.New(walker, hasher, executor, logger, telemetry.Noop{}).
		Format(context.Background(), "/w", settings)

	require.NoError(t, err)
	assert.Equal(t, []string{"main.c"}, report.Matched)
	assert.Empty(t, report.Changed)
}

func TestFormatter_Format_MissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := formatter.New(fs.NewWalker(), fs.NewHasher(), mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl), telemetry.Noop{})

	_, err := f.Format(context.Background(), filepath.Join(t.TempDir(), "missing"), domain.DefaultSettings("/").Formatter)

	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestFormatter_Format_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	walker := mocks.NewMockSourceWalker(ctrl)
	walker.EXPECT().WalkFiles(gomock.Any(), gomock.Any()).Return(seq("a.c"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := formatter.New(walker, mocks.NewMockHasher(ctrl), mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl), telemetry.Noop{}).
		Format(ctx, "/w", domain.DefaultSettings("/w").Formatter)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvocation(t *testing.T) {
	settings := domain.DefaultSettings("/w").Formatter
	cmd := formatter.Invocation("/w", "src/main.cpp", settings)

	assert.Equal(t, "clang-format -i -verbose -style=file src/main.cpp", cmd.String())
	assert.Equal(t, "/w", cmd.Dir)
	assert.Equal(t, []string{"-i", "-verbose", "-style=file"}, settings.Args)
}
