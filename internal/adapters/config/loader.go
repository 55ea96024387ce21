// Package config provides the configuration loader for voltdev.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/kballard/go-shellquote"
	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "VOLTDEV_"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from an optional YAML file plus environment overrides.
type Loader struct {
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load resolves the settings for the project rooted at root.
// A missing default config file yields the defaults, while a missing file named
// explicitly by path is an error. Environment overrides are applied last.
func (l *Loader) Load(root, path string) (*domain.Settings, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", root)
	}

	settings := domain.DefaultSettings(absRoot)

	optional := path == "" || path == DefaultFilename
	if path == "" {
		path = DefaultFilename
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(absRoot, path)
	}

	vf, err := readVoltfile(path, optional)
	if err != nil {
		return nil, err
	}
	if vf != nil {
		if err := applyVoltfile(&settings, vf); err != nil {
			return nil, err
		}
	}

	if err := l.applyEnv(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func readVoltfile(path string, optional bool) (*Voltfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if optional && errors.Is(err, iofs.ErrNotExist) {
		return nil, nil //nolint:nilnil // absent config means defaults
	}
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}

	var vf Voltfile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "invalid yaml"), "path", path))
	}
	if vf.Version != "" && vf.Version != SupportedVersion {
		return nil, errors.Join(domain.ErrConfigParseFailed,
			zerr.With(zerr.With(zerr.New("unsupported config version"), "version", vf.Version), "path", path))
	}
	return &vf, nil
}

func applyVoltfile(s *domain.Settings, vf *Voltfile) error {
	setString(&s.Layout.SourceDir, vf.SourceDir)
	setString(&s.Layout.BuildDir, vf.BuildDir)
	setString(&s.Layout.CacheFile, vf.CacheFile)
	setString(&s.Layout.TestInput, vf.TestInput)
	setString(&s.Layout.OutputStem, vf.OutputStem)
	setString(&s.CMake, vf.CMake)

	var err error
	if s.ConfigureArgs, err = splitArgs("configure_args", vf.ConfigureArgs, s.ConfigureArgs); err != nil {
		return err
	}
	if s.BuildArgs, err = splitArgs("build_args", vf.BuildArgs, s.BuildArgs); err != nil {
		return err
	}

	if vf.ClearScreen != nil {
		s.ClearScreen = *vf.ClearScreen
	}
	if vf.StrictCompile != nil {
		s.StrictCompile = *vf.StrictCompile
	}

	setString(&s.Formatter.Command, vf.Formatter.Command)
	if vf.Formatter.Args != nil {
		s.Formatter.Args = vf.Formatter.Args
	}
	if vf.Formatter.Extensions != nil {
		s.Formatter.Filter.Extensions = vf.Formatter.Extensions
	}
	if vf.Formatter.ExcludeDirs != nil {
		s.Formatter.Filter.ExcludeDirs = vf.Formatter.ExcludeDirs
	}
	return nil
}

func (l *Loader) applyEnv(s *domain.Settings) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix, Environment: l.Environment}); err != nil {
		return errors.Join(domain.ErrEnvParseFailed, err)
	}

	setString(&s.CMake, o.CMake)
	setString(&s.Layout.BuildDir, o.BuildDir)
	setString(&s.Formatter.Command, o.ClangFormat)

	var err error
	if s.ConfigureArgs, err = splitArgs(EnvPrefix+"CONFIGURE_ARGS", o.ConfigureArgs, s.ConfigureArgs); err != nil {
		return err
	}

	if o.NoClear != nil {
		s.ClearScreen = !*o.NoClear
	}
	if o.Strict != nil {
		s.StrictCompile = *o.Strict
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// splitArgs splits raw into shell words, keeping current when raw is empty.
func splitArgs(key, raw string, current []string) ([]string, error) {
	if raw == "" {
		return current, nil
	}
	words, err := shellquote.Split(raw)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidArgs, zerr.With(zerr.Wrap(err, "split failed"), "key", key))
	}
	return words, nil
}
