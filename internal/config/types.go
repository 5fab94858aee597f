package config

// Config is the top-level scholarpage configuration, corresponding to
// .scholarpage.yml.
type Config struct {
	ContentFile string      `yaml:"content_file" koanf:"content_file"`
	OutputFile  string      `yaml:"output_file" koanf:"output_file"`
	Markdown    bool        `yaml:"markdown" koanf:"markdown"`
	LogLevel    string      `yaml:"log_level" koanf:"log_level"`
	Serve       ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Port       int      `yaml:"port" koanf:"port"`
	LiveReload bool     `yaml:"live_reload" koanf:"live_reload"`
	Watch      []string `yaml:"watch" koanf:"watch"`
}
