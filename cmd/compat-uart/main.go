//go:build rp2040 || rp2350

// compat-uart echoes UART0 through the v0 serial interfaces, bridged onto
// the uartx driver's v1 stream.
package main

import (
	"machine"
	"time"

	"halcompat/compat"
	"halcompat/drvshim"
	"halcompat/halv0/nb"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

const baud = 115200

func main() {
	println("[compat-uart] boot …")
	time.Sleep(1500 * time.Millisecond)

	hw := uartx.UART0
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.GPIO0,
		RX:       machine.GPIO1,
	}); err != nil {
		println("[compat-uart] configure failed:", err.Error())
		return
	}

	stream := drvshim.FromUART(hw)
	tx := compat.NewReverseSerial(stream)
	rx := compat.NewReverseSerialReader(stream)

	for _, c := range []byte("[compat-uart] ready\r\n") {
		if err := nb.Block(func() error { return tx.Write(c) }); err != nil {
			println("[compat-uart] write failed:", err.Error())
			return
		}
	}

	var n uint32
	for {
		c, err := rx.Read()
		if nb.IsWouldBlock(err) {
			time.Sleep(time.Millisecond)
			continue
		}
		if err != nil {
			println("[compat-uart] read failed:", err.Error())
			continue
		}
		if err := nb.Block(func() error { return tx.Write(c) }); err != nil {
			println("[compat-uart] echo failed:", err.Error())
			continue
		}
		if n++; n%256 == 0 {
			println("[compat-uart] echoed", n, "bytes")
		}
	}
}
