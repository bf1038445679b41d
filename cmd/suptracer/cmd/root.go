package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "suptracer",
	Short: "render triangle meshes with a CPU ray tracer",
	Long: `suptracer loads a triangle mesh from an OBJ file, builds a
binned-SAH BVH over it, and renders a depth or heatmap image to a BMP file:
	- render: build the BVH and cast primary rays over an image grid,
	- config: write a render-settings file prefilled with defaults,
	- info: print mesh and BVH statistics without rendering.`,
}

// Execute runs RootCmd, whose child commands are added by the init
// functions of their own files. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
