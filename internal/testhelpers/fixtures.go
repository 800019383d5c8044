package testhelpers

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	g "github.com/onsi/gomega"
)

// WriteImage writes a small PNG named name into dir.
func WriteImage(dir, name string) string {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		img.Set(x, 2, color.RGBA{R: 20, G: 40, B: 160, A: 255})
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	g.Expect(err).NotTo(g.HaveOccurred())
	defer f.Close()

	g.Expect(png.Encode(f, img)).To(g.Succeed())
	return path
}

// WriteAssets writes the logo and the signature of every engineer into dir.
func WriteAssets(dir string, names ...string) {
	for _, name := range names {
		WriteImage(dir, name)
	}
}
