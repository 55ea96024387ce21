package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/voltdev/internal/adapters/shell"
	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/voltdev/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVertex := mocks.NewMockVertex(ctrl)

	var vertexOut, vertexErr bytes.Buffer
	mockVertex.EXPECT().Stdout().Return(&vertexOut).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&vertexErr).AnyTimes()

	executor := shell.NewExecutor()
	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	var stdout, stderr bytes.Buffer
	res := executor.Execute(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello to stdout; echo hello to stderr >&2"},
		Dir:  t.TempDir(),
	}, &stdout, &stderr)
	require.True(t, res.Success())

	require.Contains(t, stdout.String(), "hello to stdout")
	require.Contains(t, stderr.String(), "hello to stderr")
	require.Contains(t, vertexOut.String(), "hello to stdout")
	require.Contains(t, vertexErr.String(), "hello to stderr")
}
