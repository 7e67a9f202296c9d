package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/judithlutton/multichannel-surface/archive"
	"github.com/judithlutton/multichannel-surface/picker"
	"github.com/judithlutton/multichannel-surface/surfio"
	"github.com/judithlutton/multichannel-surface/viewer"
)

func readArgs(c *cli.Context) ([]*viewer.Layer, error) {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files given")
	}
	read := surfio.Reader(paths...)
	if read == nil {
		return nil, fmt.Errorf("unsupported file type: %s", paths[0])
	}
	return read(paths...)
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := &cli.App{
		Name:  "surfchan",
		Usage: "Inspect, convert, and explore surfaces with multi-channel point data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log read/write diagnostics",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				surfio.SetLogger(logger)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print vertex, face, and channel summaries for surface files",
				ArgsUsage: "<files>",
				Action: func(c *cli.Context) error {
					layers, err := readArgs(c)
					if err != nil {
						return err
					}
					for _, l := range layers {
						names := viewer.ChannelNames(l)
						fmt.Printf("%s: %d vertices, %d faces, %d channels\n",
							l.Name, l.Data.VertexCount(), l.Data.FaceCount(), len(names))
						if len(names) > 0 {
							fmt.Printf("  channels: %s\n", strings.Join(names, ", "))
						}
					}
					return nil
				},
			},
			{
				Name:      "convert",
				Usage:     "rewrite surface files into an output directory",
				ArgsUsage: "<files>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Usage:    "output directory",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					layers, err := readArgs(c)
					if err != nil {
						return err
					}
					written, err := surfio.WriteBatch(c.String("out"), layers)
					for _, p := range written {
						fmt.Println(p)
					}
					if err != nil {
						return err
					}
					if len(written) == 0 {
						return fmt.Errorf("nothing written to %s", c.String("out"))
					}
					return nil
				},
			},
			{
				Name:      "archive",
				Usage:     "bundle surface files into a single rap recording",
				ArgsUsage: "<files>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Usage:    "path to rap file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					layers, err := readArgs(c)
					if err != nil {
						return err
					}
					f, err := os.Create(c.String("out"))
					if err != nil {
						return err
					}
					defer f.Close()
					return archive.Write(f, c.String("out"), layers)
				},
			},
			{
				Name:      "view",
				Usage:     "pick the displayed channel of each surface interactively",
				ArgsUsage: "<files>",
				Action: func(c *cli.Context) error {
					layers, err := readArgs(c)
					if err != nil {
						return err
					}
					list := viewer.NewLayerList(layers...)
					p := tea.NewProgram(picker.New(list), tea.WithAltScreen())
					picker.Watch(list, p.Send)
					_, err = p.Run()
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal("surfchan failed", zap.Error(err))
	}
}
