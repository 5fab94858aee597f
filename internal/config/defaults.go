package config

// DefaultConfigFile is the config file looked up when --config is not given.
const DefaultConfigFile = ".scholarpage.yml"

// DefaultWatch are the doublestar patterns that trigger a rebuild under
// `serve --watch`.
var DefaultWatch = []string{
	"content.yaml",
	"*.css",
	"*.js",
	"assets/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentFile: "content.yaml",
		OutputFile:  "index.html",
		Markdown:    false,
		LogLevel:    "info",
		Serve: ServeConfig{
			Port:       1313,
			LiveReload: true,
			Watch:      append([]string(nil), DefaultWatch...),
		},
	}
}
