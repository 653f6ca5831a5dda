package config

type ServerConfig struct {
	HTTP HTTPConfig `yaml:"http"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// AllowedOrigins configures CORS for the browser-side payment widgets
	AllowedOrigins []string `yaml:"allowed_origins"`
}
