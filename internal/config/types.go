package config

// Config is the top-level circuitbot configuration, corresponding to .circuitbot.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port" validate:"min=1,max=65535"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	CatalogFile     string   `yaml:"catalog_file" koanf:"catalog_file"`
	ContentDir      string   `yaml:"content_dir" koanf:"content_dir"`
	ContentInclude  string   `yaml:"content_include" koanf:"content_include" validate:"omitempty,glob"`
	ReplyDelayMS    int      `yaml:"reply_delay_ms" koanf:"reply_delay_ms" validate:"min=0"`
	Suggestions     []string `yaml:"suggestions" koanf:"suggestions" validate:"dive,notblank"`
	StatsEnabled    bool     `yaml:"stats_enabled" koanf:"stats_enabled"`
	DataDir         string   `yaml:"data_dir" koanf:"data_dir" validate:"required_if=StatsEnabled true"`
}
