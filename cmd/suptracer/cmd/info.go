package cmd

import (
	"fmt"

	"github.com/arl/go-suptracer/bvh"
	"github.com/arl/go-suptracer/scene"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info MESH.obj",
	Short: "show info about a mesh's BVH without rendering",
	Long: `Load a mesh, build its BVH, and print triangle and node counts
(total, leaf, interior) and the largest leaf size. Tree depth is not
reported.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

var infoConfigVal string

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVar(&infoConfigVal, "config", "", "render settings file (optional, only bucket_count/traversal_cost are used)")
}

func doInfo(cmd *cobra.Command, args []string) {
	cfg := bvh.DefaultConfig()
	if infoConfigVal != "" {
		var s Settings
		check(unmarshalYAMLFile(infoConfigVal, &s))
		cfg.BucketCount = s.BucketCount
		cfg.TraversalCost = s.TraversalCost
	}

	sc, err := scene.Load(args[0], cfg)
	check(err)

	var leaves, interior int
	var maxLeafSize uint32
	for _, n := range sc.BVH.Nodes {
		if n.IsLeaf() {
			leaves++
			_, count := n.LeafRange()
			if count > maxLeafSize {
				maxLeafSize = count
			}
		} else {
			interior++
		}
	}

	fmt.Println("triangles   :", len(sc.Tris))
	fmt.Println("bvh nodes   :", len(sc.BVH.Nodes))
	fmt.Println("bvh leaves  :", leaves)
	fmt.Println("bvh interior:", interior)
	fmt.Println("max leaf sz :", maxLeafSize)
}
