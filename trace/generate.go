package trace

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sarchlab/llcrepl/mem"
)

// ErrUnknownWorkload is returned by Workload for names it does not know.
var ErrUnknownWorkload = errors.New("unknown workload")

// Sequential returns n loads at addresses 0, stride, 2*stride and so on.
func Sequential(n int, stride uint64) []mem.Access {
	accesses := make([]mem.Access, 0, n)

	for i := 0; i < n; i++ {
		accesses = append(accesses, mem.Access{
			Type:    mem.AccessLoad,
			Address: uint64(i) * stride,
		})
	}

	return accesses
}

// Loop walks the same workingSet lines iterations times.
func Loop(workingSet, iterations int, stride uint64) []mem.Access {
	accesses := make([]mem.Access, 0, workingSet*iterations)

	for it := 0; it < iterations; it++ {
		accesses = append(accesses, Sequential(workingSet, stride)...)
	}

	return accesses
}

// Zipf returns n loads over keys lines whose popularity follows a Zipf
// distribution with parameters s > 1 and v >= 1.
func Zipf(seed int64, s, v float64, keys uint64, n int, blockSize uint64) (
	[]mem.Access, error,
) {
	if keys == 0 {
		return nil, fmt.Errorf("zipf needs at least one key")
	}

	rng := rand.New(rand.NewSource(seed))

	zipf := rand.NewZipf(rng, s, v, keys-1)
	if zipf == nil {
		return nil, fmt.Errorf("invalid zipf parameters s=%g v=%g", s, v)
	}

	accesses := make([]mem.Access, 0, n)
	for i := 0; i < n; i++ {
		accesses = append(accesses, mem.Access{
			Type:    mem.AccessLoad,
			Address: zipf.Uint64() * blockSize,
		})
	}

	return accesses, nil
}

// Random returns n accesses to uniformly chosen lines among keys. One access
// in four is a store. It returns nil when keys is 0.
func Random(seed int64, keys uint64, n int, blockSize uint64) []mem.Access {
	if keys == 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	accesses := make([]mem.Access, 0, n)

	for i := 0; i < n; i++ {
		accessType := mem.AccessLoad
		if rng.Intn(4) == 0 {
			accessType = mem.AccessStore
		}

		accesses = append(accesses, mem.Access{
			Type:    accessType,
			Address: (rng.Uint64() % keys) * blockSize,
		})
	}

	return accesses
}

// Mix concatenates phases into one trace.
func Mix(phases ...[]mem.Access) []mem.Access {
	total := 0
	for _, p := range phases {
		total += len(p)
	}

	accesses := make([]mem.Access, 0, total)
	for _, p := range phases {
		accesses = append(accesses, p...)
	}

	return accesses
}

// WorkloadConfig describes the cache a named workload is sized for.
type WorkloadConfig struct {
	NumSets   int
	NumWays   int
	BlockSize uint64
	Seed      int64
}

// CapacityLines returns the number of lines of the cache.
func (c WorkloadConfig) CapacityLines() int {
	return c.NumSets * c.NumWays
}

type workloadFunc func(c WorkloadConfig, n int) ([]mem.Access, error)

var workloads = map[string]workloadFunc{
	"sequential": func(c WorkloadConfig, n int) ([]mem.Access, error) {
		return Sequential(n, c.BlockSize), nil
	},
	"loop": func(c WorkloadConfig, n int) ([]mem.Access, error) {
		ws := max(1, c.CapacityLines()*3/4)
		return truncate(Loop(ws, n/ws+1, c.BlockSize), n), nil
	},
	"thrash": func(c WorkloadConfig, n int) ([]mem.Access, error) {
		ws := c.CapacityLines() + c.NumSets
		return truncate(Loop(ws, n/ws+1, c.BlockSize), n), nil
	},
	"zipf": func(c WorkloadConfig, n int) ([]mem.Access, error) {
		keys := uint64(c.CapacityLines()) * 4
		return Zipf(c.Seed, 1.1, 1, keys, n, c.BlockSize)
	},
	"random": func(c WorkloadConfig, n int) ([]mem.Access, error) {
		keys := uint64(c.CapacityLines()) * 2
		return Random(c.Seed, keys, n, c.BlockSize), nil
	},
	"scan-reuse": func(c WorkloadConfig, n int) ([]mem.Access, error) {
		ws := max(1, c.CapacityLines()/2)
		var phases [][]mem.Access

		for total := 0; total < n; {
			reuse := Loop(ws, 4, c.BlockSize)
			scan := Sequential(c.CapacityLines()*2, c.BlockSize)
			for i := range scan {
				scan[i].Address += uint64(c.CapacityLines()) * c.BlockSize
			}

			phases = append(phases, reuse, scan)
			total += len(reuse) + len(scan)
		}

		return truncate(Mix(phases...), n), nil
	},
}

// Workload generates n accesses of a named synthetic workload sized for the
// cache described by c.
func Workload(name string, c WorkloadConfig, n int) ([]mem.Access, error) {
	if c.NumSets <= 0 || c.NumWays <= 0 || c.BlockSize == 0 {
		return nil, fmt.Errorf("invalid cache geometry %+v", c)
	}

	f, ok := workloads[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
	}

	return f(c, n)
}

// Workloads lists the names accepted by Workload.
func Workloads() []string {
	names := make([]string, 0, len(workloads))
	for name := range workloads {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func truncate(accesses []mem.Access, n int) []mem.Access {
	if len(accesses) > n {
		return accesses[:n]
	}

	return accesses
}
