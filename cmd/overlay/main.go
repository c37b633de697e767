package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/phanxgames/overlay"
	"github.com/phanxgames/overlay/ansi"
	"github.com/phanxgames/overlay/assetgen"
	"github.com/phanxgames/overlay/ebitenhost"
	"github.com/phanxgames/overlay/sshpreview"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "overlay"
	app.Usage = "animated backup status overlay"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "preset",
			Value: overlay.PresetWalk,
			Usage: "loop preset (walk, still)",
		},
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"OVERLAY_CONFIG"},
			Usage:   "JSON config file, overrides the preset",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}
	app.Before = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool("verbose") {
			level = slog.LevelDebug
		}
		overlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:  "window",
			Usage: "Show the overlay in a desktop window",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "scale", Value: 1, Usage: "window zoom"},
			},
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				w, err := ebitenhost.New(cfg.DisplayConfig(), c.Int("scale"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				loop, err := overlay.NewFrameLoop(cfg, w, nil)
				if err != nil {
					return cli.Exit(err, 1)
				}
				if err := w.Run("overlay", loop); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "headless",
			Usage:     "Render frames in memory and write screenshots",
			ArgsUsage: "[SCRIPT]",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "frames", Value: 60, Usage: "frames to render without a script, or the script frame limit"},
				&cli.StringFlag{Name: "out", Value: ".", Usage: "screenshot directory"},
				&cli.IntFlag{Name: "scale", Value: 1, Usage: "screenshot zoom"},
			},
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				return runHeadless(cfg, c.Args().First(), c.Int("frames"), c.String("out"), c.Int("scale"))
			},
		},
		{
			Name:  "serve",
			Usage: "Stream the overlay to ssh clients",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "addr", Value: ":2222", EnvVars: []string{"OVERLAY_ADDR"}, Usage: "listen address"},
				&cli.StringFlag{Name: "host-key", Value: "host_key", Usage: "PEM host key, generated if missing"},
			},
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				return runServe(cfg, c.String("addr"), c.String("host-key"))
			},
		},
		{
			Name:  "term",
			Usage: "Preview the overlay in this terminal",
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				return runTerm(cfg)
			},
		},
		{
			Name:      "import",
			Usage:     "Convert an image to a Go RGB565 table",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Usage: "variable name (default: file name + Pix)"},
				&cli.StringFlag{Name: "package", Value: "overlay", Usage: "package clause"},
				&cli.IntFlag{Name: "colors", Value: assetgen.MaxColors, Usage: "palette size"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				if err := runImport(c.Args().First(), c.String("name"), c.String("package"), c.Int("colors"), c.String("output")); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (overlay.Config, error) {
	if path := c.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return overlay.Config{}, fmt.Errorf("read config: %w", err)
		}
		return overlay.ParseConfig(data)
	}
	return overlay.Preset(c.String("preset"))
}

func newMemoryLoop(cfg overlay.Config) (*overlay.MemoryDisplay, *overlay.FrameLoop, error) {
	d, err := overlay.NewMemoryDisplay(cfg.DisplayConfig())
	if err != nil {
		return nil, nil, err
	}
	loop, err := overlay.NewFrameLoop(cfg, d, nil)
	if err != nil {
		d.Close()
		return nil, nil, err
	}
	return d, loop, nil
}

func runHeadless(cfg overlay.Config, script string, frames int, out string, scale int) error {
	d, loop, err := newMemoryLoop(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer d.Close()
	loop.ScreenshotDir = out
	loop.ScreenshotScale = scale

	if script != "" {
		data, err := os.ReadFile(script)
		if err != nil {
			return cli.Exit(err, 1)
		}
		r, err := overlay.LoadScript(data)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if _, err := loop.RunScript(r, frames); err != nil {
			return cli.Exit(err, 1)
		}
	} else {
		for i := 0; i < frames; i++ {
			loop.Step()
		}
		loop.Screenshot("final")
		loop.Step()
	}
	for _, p := range loop.Screenshots() {
		fmt.Println(p)
	}
	return nil
}

func runServe(cfg overlay.Config, addr, hostKey string) error {
	if err := ensureHostKey(hostKey); err != nil {
		return cli.Exit(fmt.Errorf("host key: %w", err), 1)
	}
	d, loop, err := newMemoryLoop(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer d.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go loop.RunContext(ctx)

	srv := sshpreview.NewServer(addr, hostKey, d, time.Duration(cfg.FrameInterval))
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func runTerm(cfg overlay.Config) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return cli.Exit("term: stdin is not a terminal", 1)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer term.Restore(fd, state)

	d, loop, err := newMemoryLoop(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer d.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				cancel()
				return
			}
			for _, b := range buf[:n] {
				if b == 'q' || b == 'Q' || b == 3 {
					cancel()
					return
				}
			}
		}
	}()

	go loop.RunContext(ctx)

	stdout := os.Stdout
	io.WriteString(stdout, ansi.EnableAltScreen()+ansi.HideCursor()+ansi.ClearScreen())
	defer io.WriteString(stdout, ansi.ShowCursor()+ansi.DisableAltScreen())

	var (
		enc  ansi.Encoder
		buf  []uint16
		last uint64
	)
	dc := d.Config()
	ticker := time.NewTicker(max(time.Duration(cfg.FrameInterval), 16*time.Millisecond))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		var n uint64
		buf, n = d.Snapshot(buf)
		if n == last {
			continue
		}
		last = n
		cols, rows, err := term.GetSize(int(stdout.Fd()))
		if err != nil {
			cols, rows = 80, 24
		}
		io.WriteString(stdout, enc.Encode(overlay.FrameImage(buf, dc.Width, dc.Height, 1), cols, rows))
	}
}

func runImport(path, name, pkg string, colors int, output string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := assetgen.Decode(f)
	if err != nil {
		return err
	}
	m, err := assetgen.Convert(img, assetgen.Options{Colors: colors})
	if err != nil {
		return err
	}
	if name == "" {
		base := filepath.Base(path)
		name = base[:len(base)-len(filepath.Ext(base))] + "Pix"
	}

	var w io.Writer = os.Stdout
	if output != "" {
		out, err := os.Create(output)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
	}
	return assetgen.WriteGo(w, pkg, name, m)
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	overlay.Logger().Info("generating new host key", "path", path)
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
