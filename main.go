package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// newApp wires the command tree
func newApp() *cli.App {
	// Free up -v for verbosity
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Build the named scene, trace it with the scene's recommended camera and write
the image. Flags override the camera; the output format follows the file
extension (.ppm or .png), and "-" writes PPM to stdout.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "bouncing-spheres",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width; the height follows the scene's aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel scanline workers (default: one per CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for scene construction and sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (default: output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
