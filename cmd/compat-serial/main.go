// compat-serial writes a message to a host serial port through the v0
// serial interface, bridged onto the port's v1 stream.
package main

import (
	"flag"
	"os"

	"halcompat/compat"
	"halcompat/halv0/nb"
	serial0 "halcompat/halv0/serial"

	"github.com/tarm/serial"
)

// hostPort adapts a tarm port to a v1 stream. tarm's Flush discards the
// kernel buffers, so Flush here is a no-op: Write already returns once the
// bytes are handed to the driver.
type hostPort struct {
	p *serial.Port
}

func (h hostPort) Read(b []byte) (int, error)  { return h.p.Read(b) }
func (h hostPort) Write(b []byte) (int, error) { return h.p.Write(b) }
func (h hostPort) Flush() error                { return nil }

func openPort(cfg *Config) (*serial.Port, error) {
	return serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout(),
	})
}

// writeLine sends msg one word at a time, the way v0 drivers do.
func writeLine(w serial0.Write, msg string) error {
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if err := nb.Block(func() error { return w.Write(c) }); err != nil {
			return err
		}
	}
	return nb.Block(w.Flush)
}

func main() { os.Exit(run(os.Args[1:])) }

func run(args []string) int {
	cfg, err := loadConfig(flag.NewFlagSet("compat-serial", flag.ContinueOnError), args)
	if err != nil {
		println("[compat-serial] config:", err.Error())
		return 2
	}

	port, err := openPort(cfg)
	if err != nil {
		println("[compat-serial] open", cfg.Device, "failed:", err.Error())
		return 1
	}
	defer port.Close()

	hp := hostPort{p: port}
	tx := compat.NewReverseSerial(hp)
	println("[compat-serial] open", cfg.Device, "baud", cfg.Baud)

	buf := make([]byte, 256)
	for i := 0; i < cfg.Repeat; i++ {
		if err := writeLine(tx, cfg.Message); err != nil {
			println("[compat-serial] write failed:", err.Error())
			return 1
		}
		if !cfg.Echo {
			continue
		}
		n, err := hp.Read(buf)
		if err != nil {
			println("[compat-serial] read:", err.Error())
			continue
		}
		println("[compat-serial] rx", n, "bytes:", string(buf[:n]))
	}
	println("[compat-serial] done")
	return 0
}
