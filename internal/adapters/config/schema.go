package config

// DefaultFilename is the configuration file looked up in the project root.
const DefaultFilename = "voltdev.yaml"

// SupportedVersion is the only accepted value of the version key.
const SupportedVersion = "1"

// Voltfile represents the structure of the voltdev.yaml configuration file.
// Every key is optional; absent keys keep their defaults.
type Voltfile struct {
	Version       string       `yaml:"version"`
	SourceDir     string       `yaml:"source_dir"`
	BuildDir      string       `yaml:"build_dir"`
	CacheFile     string       `yaml:"cache_file"`
	TestInput     string       `yaml:"test_input"`
	OutputStem    string       `yaml:"output_stem"`
	CMake         string       `yaml:"cmake"`
	ConfigureArgs string       `yaml:"configure_args"`
	BuildArgs     string       `yaml:"build_args"`
	ClearScreen   *bool        `yaml:"clear_screen"`
	StrictCompile *bool        `yaml:"strict_compile"`
	Formatter     FormatterDTO `yaml:"formatter"`
}

// FormatterDTO represents the formatter section of the configuration.
type FormatterDTO struct {
	Command     string   `yaml:"command"`
	Args        []string `yaml:"args"`
	Extensions  []string `yaml:"extensions"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// envOverrides holds the VOLTDEV_ prefixed environment variables.
type envOverrides struct {
	CMake         string `env:"CMAKE"`
	BuildDir      string `env:"BUILD_DIR"`
	ClangFormat   string `env:"CLANG_FORMAT"`
	ConfigureArgs string `env:"CONFIGURE_ARGS"`
	NoClear       *bool  `env:"NO_CLEAR"`
	Strict        *bool  `env:"STRICT"`
}
