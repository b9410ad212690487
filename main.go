package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
	"github.com/df07/go-whitted-raytracer/web/server"
)

var logger = log.New("whitted")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-whitted-raytracer"
	app.Usage = "render scenes with recursive Whitted ray tracing"
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
			Usage: "render a built-in scene and report statistics",
			Description: `
Trace every pixel of a built-in scene with Phong shading, shadows, and
recursive reflection and refraction. The image is kept in memory; only
statistics are printed.`,
			Flags:  renderFlags(),
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
		{
			Name:  "info",
			Usage: "describe the contents of a built-in scene",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene", Value: "default", Usage: "scene to describe"},
				cli.StringFlag{Name: "texture", Usage: "image file used by textured scenes"},
			},
			Action: sceneInfo,
		},
		{
			Name:  "serve",
			Usage: "serve renders and pixel inspection over HTTP",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "addr", Value: "localhost:8080", Usage: "address to listen on"},
			},
			Action: serve,
		},
	}
	return app
}

func renderFlags() []cli.Flag {
	defaults := renderer.DefaultSamplingConfig()
	options := integrator.DefaultOptions()
	return []cli.Flag{
		cli.StringFlag{Name: "scene", Value: "default", Usage: "built-in scene to render"},
		cli.StringFlag{Name: "texture", Usage: "image file used by textured scenes"},
		cli.IntFlag{Name: "texture-max-size", Value: 1024, Usage: "shrink textures larger than this on either side"},
		cli.IntFlag{Name: "width", Value: defaults.Width, Usage: "frame width"},
		cli.IntFlag{Name: "height", Value: defaults.Height, Usage: "frame height"},
		cli.IntFlag{Name: "spp", Value: defaults.SamplesPerPixel, Usage: "samples per pixel"},
		cli.Int64Flag{Name: "seed", Value: defaults.Seed, Usage: "seed for pixel jitter and light sampling"},
		cli.IntFlag{Name: "max-depth", Value: options.MaxRecursion, Usage: "maximum reflection/refraction depth"},
		cli.BoolFlag{Name: "soft-shadows", Usage: "sample the whole area light"},
		cli.BoolFlag{Name: "sampled-point-shadows", Usage: "average shadow rays over the light grid when soft shadows are off"},
		cli.BoolFlag{Name: "no-ambient", Usage: "disable the ambient term"},
		cli.BoolFlag{Name: "no-diffuse", Usage: "disable the diffuse term"},
		cli.BoolFlag{Name: "no-specular", Usage: "disable the specular term"},
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// optionsFromContext maps render flags onto integrator options
func optionsFromContext(ctx *cli.Context) (integrator.Options, error) {
	opts := integrator.DefaultOptions()
	opts.MaxRecursion = ctx.Int("max-depth")
	opts.SoftShadowsOn = ctx.Bool("soft-shadows")
	opts.AmbientOn = !ctx.Bool("no-ambient")
	opts.DiffuseOn = !ctx.Bool("no-diffuse")
	opts.SpecularOn = !ctx.Bool("no-specular")
	if ctx.Bool("sampled-point-shadows") {
		opts.PointLightShadows = shading.ShadowAreaSampled
	}
	return opts, opts.Validate()
}

// loadScene builds the named scene, loading the optional texture first
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	var cfg scene.Config
	if path := ctx.String("texture"); path != "" {
		maxSize := 1024
		if ctx.IsSet("texture-max-size") {
			maxSize = ctx.Int("texture-max-size")
		}
		texture, err := loaders.LoadTexture(path, maxSize)
		if err != nil {
			return nil, err
		}
		logger.Infof("loaded texture %s (%dx%d)", path, texture.Width, texture.Height)
		cfg.Texture = texture
	}

	sc, err := scene.Create(ctx.String("scene"), cfg)
	if err != nil {
		return nil, err
	}
	logger.Infof("scene %q: %d primitives", sc.Name, sc.GetPrimitiveCount())
	return sc, nil
}

func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := optionsFromContext(ctx)
	if err != nil {
		return err
	}
	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	logger.Debugf("scene contents\n%s", sc.Stats())

	config := renderer.SamplingConfig{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		Seed:            ctx.Int64("seed"),
	}
	rt, err := renderer.NewRaytracer(sc, integrator.NewWhittedIntegrator(opts), config, log.Printf(logger))
	if err != nil {
		return err
	}

	_, stats := rt.RenderPass()
	logger.Noticef("render statistics\n%s", stats.Table())
	return nil
}

func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func sceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(ctx.App.Writer, sc.Stats())
	return nil
}

func serve(ctx *cli.Context) error {
	setupLogging(ctx)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return server.NewServer(ctx.String("addr")).Start(sigCtx)
}
