// Bench is a benchmarking tool for measuring minimizer queue throughput in
// explicit, implicit and winnowing modes, per hash algorithm.
//
// Usage:
//
//	go run ./cmd/bench -n 10000000 -width 31 -algo all
//
// Flags:
//
//	-n          Number of stream elements (default: 10,000,000)
//	-width      Window width (default: 31)
//	-k          k-gram length for winnowing (default: 21)
//	-algo       Algorithm: all, wymix, xxh3, xxhash64 or murmur3 (default: all)
//	-file       Winnow this file instead of generated bytes
//	-workers    Parallel workers for batch winnowing, 0 = GOMAXPROCS (default: 0)
//	-v          Debug logging
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamirms/minqueue"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

type result struct {
	mode    string
	algo    string
	elems   int
	elapsed time.Duration
	output  int // minimizers or fingerprints observed, keeps the work live
}

func (r result) nsPerElem() float64 {
	return float64(r.elapsed.Nanoseconds()) / float64(r.elems)
}

func main() {
	nFlag := flag.Int("n", 10_000_000, "number of stream elements")
	widthFlag := flag.Int("width", 31, "window width")
	kFlag := flag.Int("k", 21, "k-gram length for winnowing")
	algoFlag := flag.String("algo", "all", "algorithm: all, wymix, xxh3, xxhash64 or murmur3")
	fileFlag := flag.String("file", "", "winnow this file instead of generated bytes")
	workersFlag := flag.Int("workers", 0, "parallel workers for batch winnowing (0 = GOMAXPROCS)")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	algos, err := selectAlgorithms(*algoFlag)
	if err != nil {
		log.WithError(err).Fatal("Invalid -algo")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.WithError(err).Fatal("Could not create CPU profile")
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("Could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	baselineRSS := getMaxRSS()
	rng := rand.New(rand.NewPCG(0x1234567890ABCDEF, uint64(*widthFlag)))

	log.WithField("n", *nFlag).Info("Generating stream")
	vals := make([]uint64, *nFlag)
	for i := range vals {
		vals[i] = rng.Uint64()
	}

	var results []result
	for _, algo := range algos {
		entry := log.WithFields(logrus.Fields{"algo": algo, "width": *widthFlag})

		entry.Info("Benchmarking explicit queue")
		r, err := benchExplicit(vals, *widthFlag, algo)
		if err != nil {
			entry.WithError(err).Fatal("Explicit queue failed")
		}
		results = append(results, r)

		entry.Info("Benchmarking implicit queue")
		r, err = benchImplicit(vals, *widthFlag, algo)
		if err != nil {
			entry.WithError(err).Fatal("Implicit queue failed")
		}
		results = append(results, r)

		if algo == minqueue.AlgoWyMix || algo == minqueue.AlgoIdentity {
			entry.Debug("Skipping winnowing: algorithm hashes integers only")
			continue
		}
		entry.WithField("k", *kFlag).Info("Benchmarking winnowing")
		r, err = benchWinnow(rng, *fileFlag, *nFlag, *kFlag, *widthFlag, *workersFlag, algo)
		if err != nil {
			entry.WithError(err).Fatal("Winnowing failed")
		}
		results = append(results, r)
	}

	printResults(results, *widthFlag, getMaxRSS()-baselineRSS)
}

func selectAlgorithms(name string) ([]minqueue.HashAlgorithmID, error) {
	if name == "all" {
		return []minqueue.HashAlgorithmID{
			minqueue.AlgoWyMix, minqueue.AlgoXXH3, minqueue.AlgoXXHash64, minqueue.AlgoMurmur3,
		}, nil
	}
	algo, err := minqueue.ParseHashAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []minqueue.HashAlgorithmID{algo}, nil
}

func benchExplicit(vals []uint64, width int, algo minqueue.HashAlgorithmID) (result, error) {
	q, err := minqueue.New[uint64](width, minqueue.WithAlgorithm(algo))
	if err != nil {
		return result{}, err
	}
	var changes int
	var last uint64
	start := time.Now()
	for _, v := range vals {
		q.Insert(v)
		m, err := q.Min()
		if err != nil {
			return result{}, err
		}
		if m != last {
			changes++
			last = m
		}
	}
	return result{mode: "explicit", algo: algo.String(), elems: len(vals), elapsed: time.Since(start), output: changes}, nil
}

func benchImplicit(vals []uint64, width int, algo minqueue.HashAlgorithmID) (result, error) {
	q, err := minqueue.NewImplicit[uint64](width, minqueue.WithAlgorithm(algo))
	if err != nil {
		return result{}, err
	}
	var ties int
	start := time.Now()
	for _, v := range vals {
		q.Insert(v)
		if q.MultipleMins() {
			if _, err := q.InnerMinPos(); err != nil {
				return result{}, err
			}
			ties++
		}
	}
	return result{mode: "implicit", algo: algo.String(), elems: len(vals), elapsed: time.Since(start), output: ties}, nil
}

func benchWinnow(rng *rand.Rand, path string, n, k, width, workers int, algo minqueue.HashAlgorithmID) (result, error) {
	opts := []minqueue.WinnowOption{minqueue.WithHashing(minqueue.WithAlgorithm(algo))}

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return result{}, fmt.Errorf("stat input: %w", err)
		}
		start := time.Now()
		fps, err := minqueue.WinnowFile(path, k, width, opts...)
		if err != nil {
			return result{}, err
		}
		return result{mode: "winnow-file", algo: algo.String(), elems: int(info.Size()), elapsed: time.Since(start), output: len(fps)}, nil
	}

	// Split generated DNA-like text into documents for the batch sampler.
	const docSize = 1 << 20
	docs := make([][]byte, 0, n/docSize+1)
	for left := n; left > 0; left -= docSize {
		doc := make([]byte, min(left, docSize))
		for i := range doc {
			doc[i] = "ACGT"[rng.IntN(4)]
		}
		docs = append(docs, doc)
	}

	start := time.Now()
	out, err := minqueue.WinnowAll(context.Background(), docs, k, width, workers, opts...)
	if err != nil {
		return result{}, err
	}
	elapsed := time.Since(start)
	var total int
	for _, fps := range out {
		total += len(fps)
	}
	return result{mode: "winnow-batch", algo: algo.String(), elems: n, elapsed: elapsed, output: total}, nil
}

func printResults(results []result, width int, rss uint64) {
	fmt.Printf("\n")
	fmt.Printf("╔══════════════╦══════════╦══════════════╦══════════════╦══════════════╗\n")
	fmt.Printf("║ Mode         ║ Algo     ║ ns/elem      ║ M elem/sec   ║ Output       ║\n")
	fmt.Printf("╠══════════════╬══════════╬══════════════╬══════════════╬══════════════╣\n")
	for _, r := range results {
		fmt.Printf("║ %-12s ║ %-8s ║ %12.2f ║ %12.2f ║ %12d ║\n",
			r.mode, r.algo, r.nsPerElem(), float64(r.elems)/r.elapsed.Seconds()/1_000_000, r.output)
	}
	fmt.Printf("╚══════════════╩══════════╩══════════════╩══════════════╩══════════════╝\n")
	fmt.Printf("Width %d, peak RSS growth %.1f MB\n", width, float64(rss)/1_000_000)
}
