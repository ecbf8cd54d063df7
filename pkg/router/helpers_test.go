package router

import "github.com/vedantk/website/pkg/routepath"

func splitForTest(path string) []string {
	return routepath.Segments(path)
}
