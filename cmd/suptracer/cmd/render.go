package cmd

import (
	"fmt"

	"github.com/arl/go-suptracer/buildlog"
	"github.com/arl/go-suptracer/bvh"
	"github.com/arl/go-suptracer/camera"
	"github.com/arl/go-suptracer/film"
	"github.com/arl/go-suptracer/scene"
	"github.com/arl/math32"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render MESH.obj OUTFILE.bmp",
	Short: "render a mesh to a BMP image",
	Long: `Load a mesh from MESH.obj, build a BVH over it, cast one primary
ray per pixel of the configured image size, and write the result to
OUTFILE.bmp as either a depthmap or a heatmap of traversal steps.`,
	Args: cobra.ExactArgs(2),
	Run:  doRender,
}

var renderConfigVal string

func init() {
	RootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderConfigVal, "config", "suptracer.yml", "render settings file")
}

func doRender(cmd *cobra.Command, args []string) {
	settings := DefaultSettings()
	if err := fileExists(renderConfigVal); err == nil {
		check(unmarshalYAMLFile(renderConfigVal, &settings))
	}

	log := buildlog.New(true)

	log.StartTimer(buildlog.TimerLoad)
	cfg := bvh.Config{BucketCount: settings.BucketCount, TraversalCost: settings.TraversalCost, MaxDepth: bvh.DefaultConfig().MaxDepth}
	sc, err := scene.Load(args[0], cfg)
	check(err)
	log.StopTimer(buildlog.TimerLoad)
	log.Progressf("loaded %d triangles, %d bvh nodes", len(sc.Tris), len(sc.BVH.Nodes))

	log.StartTimer(buildlog.TimerRender)
	cam := camera.NewPinhole(settings.Width, settings.Height)

	workers := settings.Workers
	if workers < 1 {
		workers = 1
	}

	switch settings.Kind {
	case RenderHeat:
		frame := renderHeatmap(sc, cam, settings, workers)
		log.StopTimer(buildlog.TimerRender)
		check(film.SaveBMP(args[1], film.NewHeatmap(frame)))
	default:
		frame := renderDepthmap(sc, cam, settings, workers)
		log.StopTimer(buildlog.TimerRender)
		check(film.SaveBMP(args[1], film.NewDepthmap(frame)))
	}

	log.DumpLog(fmt.Sprintf("rendered %s -> %s", args[0], args[1]))
	fmt.Printf("rays cast: %d\n", sc.RaysCast())
}

func renderDepthmap(sc *scene.Scene, cam camera.Pinhole, settings Settings, workers int) *film.Frame[float32] {
	frame := film.NewFrame(settings.Width, settings.Height, math32.Inf(1))
	renderRows(settings.Height, workers, func(y int) {
		for x := 0; x < settings.Width; x++ {
			ray := cam.PrimaryRay(x, y)
			hit := sc.Intersect(&ray)
			if hit.IsValid() {
				frame.Set(x, y, hit.T)
			}
		}
	})
	return frame
}

func renderHeatmap(sc *scene.Scene, cam camera.Pinhole, settings Settings, workers int) *film.Frame[uint32] {
	frame := film.NewFrame(settings.Width, settings.Height, uint32(0))
	renderRows(settings.Height, workers, func(y int) {
		for x := 0; x < settings.Width; x++ {
			ray := cam.PrimaryRay(x, y)
			_, steps := sc.IntersectCounting(&ray)
			frame.Set(x, y, steps)
		}
	})
	return frame
}

// renderRows shards [0, height) into workers contiguous bands and renders
// each through a recursive fork-join split, reusing bvh.ParallelJoin so the
// render driver's pixel loop and the BVH builder's subtree split share one
// concurrency idiom.
//
// Grounded on the scottlawsonbc-raytrace fork-join pattern, generalized
// from a binary tree split to an arbitrary worker count via recursive
// halving of the row range.
func renderRows(height, workers int, renderRow func(y int)) {
	if workers < 2 || height < 2 {
		for y := 0; y < height; y++ {
			renderRow(y)
		}
		return
	}
	splitRows(0, height, workers, renderRow)
}

func splitRows(start, end, workers int, renderRow func(y int)) {
	if workers < 2 || end-start < 2 {
		for y := start; y < end; y++ {
			renderRow(y)
		}
		return
	}
	mid := start + (end-start)/2
	leftWorkers := workers / 2
	rightWorkers := workers - leftWorkers
	bvh.ParallelJoin(
		func() { splitRows(start, mid, leftWorkers, renderRow) },
		func() { splitRows(mid, end, rightWorkers, renderRow) },
	)
}
