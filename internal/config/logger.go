package config

type Logger struct {
	// Level matches log/slog levels: -4 debug, 0 info, 4 warn, 8 error.
	Level int `env:"LEVEL,expand" envDefault:"0"`
}
