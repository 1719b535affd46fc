package config

import (
	"time"
)

// Scan holds root discovery settings
type Scan struct {
	// Marker is the file that identifies a world root
	Marker string `koanf:"marker"`
	// Plugins is the folder, relative to the base, whose children are plugin roots
	Plugins string `koanf:"plugins"`
}

// Convert holds the default conversion request
type Convert struct {
	Options []string `koanf:"options"`
	Strict  bool     `koanf:"strict"`
}

// HTTP holds settings for the profile lookup client
type HTTP struct {
	API     string        `koanf:"api"`
	Timeout time.Duration `koanf:"timeout"`
}

// Log holds the rotating log file settings
type Log struct {
	Size     int  `koanf:"size"`
	Backups  int  `koanf:"backups"`
	Age      int  `koanf:"age"`
	Compress bool `koanf:"compress"`
}

// Output holds presentation settings
type Output struct {
	Format string `koanf:"format"`
}

// Config is the main configuration structure
type Config struct {
	Scan    Scan    `koanf:"scan"`
	Convert Convert `koanf:"convert"`
	HTTP    HTTP    `koanf:"http"`
	Log     Log     `koanf:"log"`
	Output  Output  `koanf:"output"`
}
