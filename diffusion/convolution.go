package diffusion

import "github.com/exascience/pargo/parallel"

// Convolve applies the Laplacian mask to every interior cell of src, writing
// the result into lap. Reads and writes target distinct buffers, so the row
// blocks handed to the workers are independent and run without locks.
//
// tiles is the number of work items the interior rows are divided into: 1
// runs the whole range as one sequential item, larger values partition
// finer, and 0 picks a default based on GOMAXPROCS. It tunes scheduling
// granularity, not the result. Behavior is undefined if the mask radius
// exceeds the grid halo (caller contract, not checked here).
func Convolve(src, lap *Grid, m *Mask, tiles int) {
	nx, ny := src.Interior()
	nm := src.Halo()
	parallel.Range(nm, nm+ny, tiles, func(low, high int) {
		for j := low; j < high; j++ {
			dst := lap.Row(j)
			for i := nm; i < nm+nx; i++ {
				value := 0.0
				for mj := -nm; mj <= nm; mj++ {
					mrow := m.Row(mj + nm)
					arow := src.Row(j + mj)
					for mi := -nm; mi <= nm; mi++ {
						value += mrow[mi+nm] * arow[i+mi]
					}
				}
				dst[i] = value
			}
		}
	})
}
