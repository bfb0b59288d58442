package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// KMeansExtractor pulls dominant colours out of an image using k-means
// clustering in RGB space. Extraction is deterministic: the random source is
// seeded from the sampled pixel data, so the same image always produces the
// same palette.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
}

// NewKMeansExtractor creates an extractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
	}
}

// Extract returns up to count dominant colours from the image, ordered by
// cluster weight (largest first).
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// If fewer unique colours exist than requested, return them directly.
	unique := make([]RGB, 0, len(pixels))
	seen := make(map[RGB]bool)
	for _, p := range pixels {
		if !seen[p] {
			unique = append(unique, p)
			seen[p] = true
		}
	}
	if count >= len(unique) {
		return unique, nil
	}

	centroids, weights := e.kmeans(pixels, count)

	// Order by descending cluster weight.
	order := make([]int, len(centroids))
	for i := range order {
		order[i] = i
	}
	for i := 0; i < len(order)-1; i++ {
		for j := 0; j < len(order)-i-1; j++ {
			if weights[order[j]] < weights[order[j+1]] {
				order[j], order[j+1] = order[j+1], order[j]
			}
		}
	}

	result := make([]RGB, len(centroids))
	for i, idx := range order {
		c := centroids[idx]
		result[i] = RGB{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b)}
	}
	return result, nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	r, g, b float64
}

// distance calculates the Euclidean distance between two points.
func (p point3D) distance(other point3D) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples pixels from the image. Large images are grid-sampled
// to bound the work.
func samplePixels(img image.Image) []RGB {
	const maxSamples = 2000

	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]RGB, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// contentSeed derives a random seed from the sampled pixels so that
// clustering is reproducible per image.
func contentSeed(pixels []RGB) int64 {
	var seed int64 = 1469598103934665603
	for _, p := range pixels {
		seed = (seed^int64(p.R))*1099511628211 +
			(seed^int64(p.G))*31 +
			int64(p.B)
	}
	return seed
}

// kmeans performs k-means clustering on the pixel data.
// Returns centroids and their relative cluster sizes.
func (e *KMeansExtractor) kmeans(pixels []RGB, k int) ([]point3D, []float64) {
	rng := rand.New(rand.NewSource(contentSeed(pixels)))

	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{r: float64(p.R), g: float64(p.G), b: float64(p.B)}
	}

	centroids := initCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Converged when under 1% of assignments moved.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculate(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(next[i])
		}
		centroids = next

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}
	return centroids, weights
}

// initCentroids seeds centroids with the k-means++ strategy: each new
// centroid is picked with probability proportional to its squared distance
// from the nearest existing one.
func initCentroids(points []point3D, k int, rng *rand.Rand) []point3D {
	if len(points) == 0 || k == 0 {
		return nil
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := point.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids; perturb.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

// nearestCentroid returns the index of the centroid closest to the point.
func nearestCentroid(point point3D, centroids []point3D) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := point.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculate computes the mean of each cluster as its new centroid. Empty
// clusters keep a zero centroid; the next assignment pass repopulates them
// or leaves them with zero weight.
func recalculate(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		a := assignments[i]
		sums[a].r += p.r
		sums[a].g += p.g
		sums[a].b += p.b
		counts[a]++
	}

	centroids := make([]point3D, k)
	for i := range centroids {
		if counts[i] == 0 {
			continue
		}
		centroids[i] = point3D{
			r: sums[i].r / float64(counts[i]),
			g: sums[i].g / float64(counts[i]),
			b: sums[i].b / float64(counts[i]),
		}
	}
	return centroids
}
