package domain

// Settings is the resolved configuration of a voltdev invocation.
type Settings struct {
	Layout        Layout
	CMake         string
	ConfigureArgs []string
	BuildArgs     []string
	ClearScreen   bool
	StrictCompile bool
	Formatter     FormatterSettings
}

// FormatterSettings configures the source formatting sweep.
type FormatterSettings struct {
	Command string
	Args    []string
	Filter  FormatFilter
}

// DefaultSettings returns the settings used when no configuration is present.
func DefaultSettings(root string) Settings {
	return Settings{
		Layout:      DefaultLayout(root),
		CMake:       "cmake",
		ClearScreen: true,
		Formatter: FormatterSettings{
			Command: "clang-format",
			Args:    []string{"-i", "-verbose", "-style=file"},
			Filter:  DefaultFormatFilter(),
		},
	}
}
