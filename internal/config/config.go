package config

type Config struct {
	ContentDir string `mapstructure:"contentDir"`
	OutputDir  string `mapstructure:"outputDir"`
	BaseURL    string `mapstructure:"baseURL"`
}
