package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"
)

// ExtractIterations is the fixed number of k-means refinement rounds.
// The extractor always runs all of them; determinism under a seeded
// random source matters more here than early convergence.
const ExtractIterations = 10

// rgbaStride is the byte width of one pixel in an RGBA buffer.
const rgbaStride = 4

// KMeansExtractor implements dominant colour extraction using k-means
// clustering in RGB space. The random source used for centroid
// initialization is injected so callers can seed it for reproducible
// output.
type KMeansExtractor struct {
	iterations int
	maxSamples int
	rng        *rand.Rand
}

// NewKMeansExtractor creates a new KMeansExtractor. A nil rng falls
// back to a time-seeded source.
func NewKMeansExtractor(rng *rand.Rand) *KMeansExtractor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &KMeansExtractor{
		iterations: ExtractIterations,
		maxSamples: 10000, // ~100px on the longest side
		rng:        rng,
	}
}

// ExtractColors finds the k dominant colours in a flat RGBA pixel
// buffer (4 bytes per pixel, alpha ignored) and returns them as hex
// strings in cluster-index order. Pass a seeded rng for deterministic
// output; nil uses a time-seeded source.
func ExtractColors(pixels []byte, k int, rng *rand.Rand) ([]string, error) {
	centroids, err := NewKMeansExtractor(rng).ExtractRGBA(pixels, k)
	if err != nil {
		return nil, err
	}

	hexColors := make([]string, len(centroids))
	for i, c := range centroids {
		hexColors[i] = c.Hex()
	}
	return hexColors, nil
}

// ExtractRGBA clusters a flat RGBA pixel buffer into k colours.
// A trailing partial pixel is ignored.
func (e *KMeansExtractor) ExtractRGBA(pixels []byte, k int) ([]RGB, error) {
	if k < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", k)
	}

	points := make([]point3D, 0, len(pixels)/rgbaStride)
	for i := 0; i+rgbaStride <= len(pixels); i += rgbaStride {
		points = append(points, point3D{
			R: float64(pixels[i]),
			G: float64(pixels[i+1]),
			B: float64(pixels[i+2]),
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("pixel buffer contains no pixels")
	}

	centroids := e.cluster(points, k)

	colors := make([]RGB, len(centroids))
	for i, c := range centroids {
		colors[i] = NewRGB(c.R, c.G, c.B)
	}
	return colors, nil
}

// Extract extracts a colour palette from an image. Large images are
// grid-sampled down to the extractor's sample budget before clustering,
// since clustering cost is linear in pixels.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	buf := sampleRGBA(img, e.maxSamples)
	colors, err := e.ExtractRGBA(buf, count)
	if err != nil {
		return nil, err
	}
	return NewPalette(colors), nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distanceSq calculates the squared Euclidean distance between two
// points in RGB space. Assignment only needs ordering, not magnitude.
func (p point3D) distanceSq(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return dr*dr + dg*dg + db*db
}

// cluster runs a fixed number of k-means rounds over the points.
// Centroids are initialized by uniform random sampling (with
// replacement) from the pixel population, so k larger than the number
// of distinct pixels is fine. A centroid whose cluster is empty in a
// round keeps its previous value; there is no reseeding or removal.
func (e *KMeansExtractor) cluster(points []point3D, k int) []point3D {
	centroids := make([]point3D, k)
	for i := range centroids {
		centroids[i] = points[e.rng.Intn(len(points))]
	}

	assignments := make([]int, len(points))
	sums := make([]point3D, k)
	counts := make([]int, k)

	for iter := 0; iter < e.iterations; iter++ {
		// Assign every point to its nearest centroid.
		for i, point := range points {
			assignments[i] = nearestCentroid(point, centroids)
		}

		// Recompute each centroid as the mean of its cluster.
		for i := range sums {
			sums[i] = point3D{}
			counts[i] = 0
		}
		for i, point := range points {
			cluster := assignments[i]
			sums[cluster].R += point.R
			sums[cluster].G += point.G
			sums[cluster].B += point.B
			counts[cluster]++
		}
		for i := range centroids {
			if counts[i] > 0 {
				centroids[i] = point3D{
					R: sums[i].R / float64(counts[i]),
					G: sums[i].G / float64(counts[i]),
					B: sums[i].B / float64(counts[i]),
				}
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distanceSq(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// sampleRGBA samples pixels from the image into a flat RGBA buffer.
// Small images are copied wholesale; large images are grid-sampled to
// approximately maxSamples pixels.
func sampleRGBA(img image.Image, maxSamples int) []byte {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	buf := make([]byte, 0, min(totalPixels, maxSamples)*rgbaStride)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; keep the high byte.
			buf = append(buf, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}

	return buf
}
