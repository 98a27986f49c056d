package main

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"time"
)

// Config drives the host serial exerciser.
type Config struct {
	Device        string `json:"device"`
	Baud          int    `json:"baud"`
	ReadTimeoutMS int    `json:"read_timeout_ms"`
	Message       string `json:"message"`
	Repeat        int    `json:"repeat"`
	Echo          bool   `json:"echo"`
}

func DefaultConfig() *Config {
	return &Config{
		Device:        "/dev/ttyACM0",
		Baud:          115200,
		ReadTimeoutMS: 100,
		Message:       "hello from halcompat\r\n",
		Repeat:        1,
	}
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

func (c *Config) validate() error {
	switch {
	case c.Device == "":
		return errors.New("missing device")
	case c.Baud <= 0:
		return errors.New("baud must be positive")
	case c.Repeat < 0:
		return errors.New("repeat must not be negative")
	case c.ReadTimeoutMS < 0:
		return errors.New("read_timeout_ms must not be negative")
	}
	return nil
}

// loadConfig starts from DefaultConfig, applies an optional JSON file named by
// -config, then any flags given explicitly on the command line.
func loadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := DefaultConfig()

	path := fs.String("config", "", "JSON config file")
	device := fs.String("device", cfg.Device, "serial device path")
	baud := fs.Int("baud", cfg.Baud, "baud rate")
	timeout := fs.Int("timeout", cfg.ReadTimeoutMS, "read timeout in milliseconds (0 blocks)")
	msg := fs.String("msg", cfg.Message, "message to send")
	repeat := fs.Int("repeat", cfg.Repeat, "number of times to send the message")
	echo := fs.Bool("echo", cfg.Echo, "print bytes read back after each write")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *path != "" {
		raw, err := os.ReadFile(*path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			cfg.Device = *device
		case "baud":
			cfg.Baud = *baud
		case "timeout":
			cfg.ReadTimeoutMS = *timeout
		case "msg":
			cfg.Message = *msg
		case "repeat":
			cfg.Repeat = *repeat
		case "echo":
			cfg.Echo = *echo
		}
	})

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
