// Command benchdft times the recursive and plan-based transforms across a
// range of sizes and prints a ns/op table, together with the CPU features
// of the machine so results can be compared across hosts.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/cpu"
)

func main() {
	var (
		sizeList = flag.String("sizes", "256,1024,4096,16384", "comma-separated power-of-two sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s avx2=%v avx512=%v sse2=%v neon=%v\n",
		features.Architecture, features.HasAVX2, features.HasAVX512, features.HasSSE2, features.HasNEON)
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %10s  %12s\n", "size", "mode", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))

	for _, n := range sizes {
		src := make([]algodft.Complex, n)
		for i := range src {
			src[i] = algodft.Complex{Re: rnd.Float64()*2 - 1, Im: rnd.Float64()*2 - 1}
		}

		dst := make([]algodft.Complex, n)

		report(n, "recursive", bench(*iters, *warmup, func() {
			algodft.FDFT(src, dst)
		}))

		report(n, "inverse", bench(*iters, *warmup, func() {
			algodft.IDFT(src, dst)
		}))

		plan, err := algodft.NewPlan(n)
		if err != nil {
			fmt.Printf("%8d  %10s  error: %v\n", n, "plan", err)
			continue
		}

		report(n, "plan", bench(*iters, *warmup, func() {
			if err := plan.Forward(dst, src); err != nil {
				panic(err)
			}
		}))
	}
}

func bench(iters, warmup int, fn func()) float64 {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func report(n int, mode string, nsPerOp float64) {
	fmt.Printf("%8d  %10s  %12.1f\n", n, mode, nsPerOp)
}

func parseSizes(list string) []int {
	var sizes []int

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			fmt.Printf("skipping invalid size %q\n", part)
			continue
		}

		sizes = append(sizes, n)
	}

	return sizes
}
