// Command snander drives a SPI attached NOR flash chip through the Linux
// spidev interface: identify the part, then erase, read or program it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"

	"github.com/bigbigmdm/SNANDer-VCC/flasher"
	"github.com/bigbigmdm/SNANDer-VCC/progress"
	"github.com/bigbigmdm/SNANDer-VCC/snor"
	"github.com/bigbigmdm/SNANDer-VCC/spidev"
)

type options struct {
	dev     string
	speedHz uint

	list      bool
	erase     bool
	readFile  string
	writeFile string
	partsFile string

	offset uint
	length int64
	verify bool

	debug bool
	quiet bool
}

func main() {
	var opts options

	flag.StringVar(&opts.dev, "dev", "/dev/spidev0.0", "spidev device node to use")
	flag.UintVar(&opts.speedHz, "speed", 0, "maximum SPI clock in Hz, 0 keeps the driver default")
	flag.BoolVar(&opts.list, "list", false, "list supported flash parts and exit")
	flag.BoolVar(&opts.erase, "erase", false, "erase the given range (defaults to the whole chip)")
	flag.StringVar(&opts.readFile, "read", "", "read flash contents into the given file")
	flag.StringVar(&opts.writeFile, "write", "", "program the given file into flash")
	flag.StringVar(&opts.partsFile, "parts", "", "YAML file with additional part definitions")
	flag.UintVar(&opts.offset, "offset", 0, "start offset of the operation")
	flag.Int64Var(&opts.length, "length", -1, "length of the operation, -1 means to the end of the device")
	flag.BoolVar(&opts.verify, "verify", true, "read back and verify after programming")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug output")
	flag.BoolVar(&opts.quiet, "quiet", false, "only report errors")
	flag.Parse()

	logger := createLogger(opts.debug, opts.quiet)

	if opts.list {
		listParts()
		return
	}

	if err := run(logger, opts); err != nil {
		logger.Fatal(err.Error())
	}
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func listParts() {
	names := snor.DefaultRegistry().Names()
	fmt.Println("SPI NOR flash support list:")
	for i, name := range names {
		fmt.Printf("%03d. %s\n", i+1, name)
	}
}

func run(logger *log.Logger, opts options) error {
	probeOpts := []snor.Option{
		snor.WithLogger(func(format string, params ...any) {
			logger.Debug(fmt.Sprintf(format, params...))
		}),
	}

	if !opts.quiet {
		probeOpts = append(probeOpts, snor.WithProgress(progress.NewMeter(os.Stdout, 0)))
	}

	if opts.partsFile != "" {
		f, err := os.Open(opts.partsFile)
		if err != nil {
			return err
		}
		parts, err := snor.LoadParts(f)
		f.Close()
		if err != nil {
			return err
		}
		logger.Info(fmt.Sprintf("loaded %d extra part definitions", len(parts)))
		probeOpts = append(probeOpts, snor.WithParts(parts))
	}

	bus, err := spidev.Open(opts.dev, uint32(opts.speedHz))
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.dev, err)
	}
	defer bus.Close()

	dev, err := snor.Probe(bus, probeOpts...)
	if err != nil {
		return err
	}

	chip := dev.Chip()
	logger.Info(fmt.Sprintf("detected %s, %d MiB, VCC %.2f..%.2fV",
		chip.Name, chip.Capacity()>>20, chip.VccMin, chip.VccMax))
	if chip.VccMax < 3.0 {
		logger.Info("part is low voltage, use the 1.8V adapter")
	}

	tasks := flasher.New(dev)
	tasks.LogFunc = func(format string, params ...any) {
		logger.Debug(fmt.Sprintf(format, params...))
	}

	offset := uint32(opts.offset)

	switch {
	case opts.erase:
		length := opts.length
		if length < 0 {
			length = chip.Capacity() - int64(offset)
		}
		return tasks.Erase(offset, length)

	case opts.readFile != "":
		f, err := os.Create(opts.readFile)
		if err != nil {
			return err
		}
		if err := tasks.Dump(f, offset, opts.length); err != nil {
			f.Close()
			return err
		}
		return f.Close()

	case opts.writeFile != "":
		data, err := os.ReadFile(opts.writeFile)
		if err != nil {
			return err
		}
		return tasks.Program(data, offset, opts.verify)
	}

	return nil
}
