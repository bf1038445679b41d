// Package scene ties mesh ingestion and BVH construction together into a
// single facade: load an OBJ file, normalize it into a canonical placement,
// build its BVH, and answer ray queries against it while counting how many
// rays have been cast.
package scene
