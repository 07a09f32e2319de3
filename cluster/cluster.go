package cluster

import "math"

// Point is a pixel's 2-D integer coordinate in bin space.
type Point struct {
	Bin1ID, Bin2ID int
}

// Record is one row of the clustered output, aligned by index with the
// input pixel it describes.
type Record struct {
	CBin1ID float64
	CBin2ID float64
	Label   int
	Size    int
}

// Cluster groups points into proximity clusters: two points within
// threshold of each other join the same cluster, transitively through a
// chain of points with no gap exceeding threshold (single-link clustering).
//
// Returns one Record per input point, in input order, reporting its
// cluster's centroid (the unrounded mean of member coordinates), a dense
// label in [0, #clusters), and the cluster's member count.
func Cluster(points []Point, threshold float64) ([]Record, error) {
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	n := len(points)
	if n == 0 {
		return []Record{}, nil
	}

	visited := make([]bool, n)
	labelOf := make([]int, n)
	nextLabel := 0

	type accum struct {
		sum1, sum2 float64
		size       int
	}
	var centroids []accum

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var members []int

		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			members = append(members, idx)
			for cand := 0; cand < n; cand++ {
				if visited[cand] {
					continue
				}
				if withinThreshold(points[idx], points[cand], threshold) {
					visited[cand] = true
					queue = append(queue, cand)
				}
			}
		}

		var acc accum
		for _, idx := range members {
			labelOf[idx] = nextLabel
			acc.sum1 += float64(points[idx].Bin1ID)
			acc.sum2 += float64(points[idx].Bin2ID)
			acc.size++
		}
		centroids = append(centroids, acc)
		nextLabel++
	}

	records := make([]Record, n)
	for i := range points {
		label := labelOf[i]
		acc := centroids[label]
		records[i] = Record{
			CBin1ID: acc.sum1 / float64(acc.size),
			CBin2ID: acc.sum2 / float64(acc.size),
			Label:   label,
			Size:    acc.size,
		}
	}
	return records, nil
}

func withinThreshold(a, b Point, threshold float64) bool {
	dx := float64(a.Bin1ID - b.Bin1ID)
	dy := float64(a.Bin2ID - b.Bin2ID)
	return math.Sqrt(dx*dx+dy*dy) <= threshold
}
