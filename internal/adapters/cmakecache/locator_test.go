package cmakecache_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/voltdev/internal/adapters/cmakecache"
	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeCache(t *testing.T, layout domain.Layout, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(layout.BuildPath(), 0o750))
	require.NoError(t, os.WriteFile(layout.CachePath(), []byte(content), 0o600))
}

func TestLocator_Locate(t *testing.T) {
	tests := []struct {
		name  string
		cache string
		want  string
	}{
		{name: "project name present", cache: "CMAKE_PROJECT_NAME:STATIC=Foo\n", want: "Foo"},
		{name: "last match wins", cache: "CMAKE_PROJECT_NAME:STATIC=Foo\nCMAKE_PROJECT_NAME:STATIC=Bar\n", want: "Bar"},
		{name: "falls back to default", cache: "CMAKE_GENERATOR:INTERNAL=Ninja\n", want: "volt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := domain.DefaultLayout(t.TempDir())
			writeCache(t, layout, tt.cache)

			got, err := cmakecache.NewLocator(cmakecache.PrefixParser{}).Locate(layout, "volt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocator_Locate_MissingCache(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())

	_, err := cmakecache.NewLocator(cmakecache.PrefixParser{}).Locate(layout, "volt")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheNotFound))
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestLocator_Locate_UsesParser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	layout := domain.DefaultLayout(t.TempDir())
	writeCache(t, layout, "anything\n")

	parser := mocks.NewMockCacheParser(ctrl)
	parser.EXPECT().ProjectName(gomock.Any()).Return("", false, errors.New("scan failed")).Times(1)

	_, err := cmakecache.NewLocator(parser).Locate(layout, "volt")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheNotFound))
}

func TestLocator_Locate_CacheIsDirectory(t *testing.T) {
	layout := domain.DefaultLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(layout.BuildPath(), layout.CacheFile), 0o750))

	_, err := cmakecache.NewLocator(cmakecache.PrefixParser{}).Locate(layout, "volt")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheNotFound))
}
