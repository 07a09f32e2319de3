// Command compute-expected is the CLI surface for the expected package: it
// loads one dense balanced window per chromosomal region from a directory
// (standing in for the cooler-like store this module treats as external),
// computes the cis diagonal-average or trans blockwise-average expected
// profile, and writes a tab-separated table.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dotloop/hictile/expected"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "compute-expected:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("compute-expected", flag.ContinueOnError)
	nproc := fs.Int("nproc", 1, "number of worker goroutines to split region work between")
	_ = fs.Int("chunksize", 10_000_000, "pixels handled per worker at a time (accepted for interface parity; this directory-backed source loads whole regions)")
	contactType := fs.String("contact-type", "cis", "cis or trans")
	dropDiags := fs.Int("drop-diags", 2, "number of diagonals to neglect for cis contact type")
	_ = fs.String("weight-name", "weight", "balancing weight column name (accepted for interface parity; input matrices are pre-balanced)")
	regionsFile := fs.String("regions", "", "path to a file listing region names, one per line; defaults to every *.tsv file in cool_path whose name has no \"__\" (trans-pair files)")
	output := fs.String("o", "", "output file path; defaults to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: compute-expected [flags] COOL_PATH")
	}
	coolPath := fs.Arg(0)

	if *contactType != "cis" && *contactType != "trans" {
		return expected.ErrUnknownContactType
	}
	if *nproc < 1 {
		return fmt.Errorf("--nproc must be >= 1")
	}
	if *dropDiags < 0 {
		return expected.ErrNegativeIgnoreDiags
	}

	regions, err := resolveRegions(coolPath, *regionsFile)
	if err != nil {
		return err
	}

	src := expected.DirSource{Dir: coolPath}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("opening -o %q: %w", *output, err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	if *contactType == "cis" {
		return runCis(context.Background(), src, regions, *dropDiags, *nproc, w)
	}
	return runTrans(context.Background(), src, regions, *nproc, w)
}

func resolveRegions(dir, regionsFile string) ([]string, error) {
	if regionsFile != "" {
		data, err := os.ReadFile(regionsFile)
		if err != nil {
			return nil, fmt.Errorf("reading --regions %q: %w", regionsFile, err)
		}
		var regions []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				regions = append(regions, line)
			}
		}
		return regions, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading COOL_PATH %q: %w", dir, err)
	}
	var regions []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tsv") {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(e.Name()), ".tsv")
		if strings.Contains(name, "__") {
			continue // trans-pair file, not a single cis region
		}
		regions = append(regions, name)
	}
	sort.Strings(regions)
	return regions, nil
}

type cisRow struct {
	region string
	diag   int
	stat   expected.DiagStat
}

func runCis(ctx context.Context, src expected.MatrixSource, regions []string, dropDiags, nproc int, w *bufio.Writer) error {
	rowsByRegion := make([][]cisRow, len(regions))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(nproc)
	for idx, region := range regions {
		idx, region := idx, region
		g.Go(func() error {
			m, err := src.LoadRegion(region)
			if err != nil {
				return fmt.Errorf("region %q: %w", region, err)
			}
			stats, err := expected.CisDiagonalAverages(m, dropDiags)
			if err != nil {
				return fmt.Errorf("region %q: %w", region, err)
			}
			rows := make([]cisRow, len(stats))
			for d, s := range stats {
				rows[d] = cisRow{region: region, diag: d, stat: s}
			}
			rowsByRegion[idx] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(w, "region\tdiag\tbalanced.sum\tn_valid\tbalanced.avg")
	for _, rows := range rowsByRegion {
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n",
				r.region, r.diag, formatFloat(r.stat.Sum), r.stat.NValid, formatFloat(r.stat.Avg))
		}
	}
	return nil
}

func runTrans(ctx context.Context, src expected.MatrixSource, regions []string, nproc int, w *bufio.Writer) error {
	type pair struct{ r1, r2 string }
	var pairs []pair
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			pairs = append(pairs, pair{regions[i], regions[j]})
		}
	}

	stats := make([]expected.DiagStat, len(pairs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(nproc)
	for idx, p := range pairs {
		idx, p := idx, p
		g.Go(func() error {
			m, err := src.LoadRegion(p.r1 + "__" + p.r2)
			if err != nil {
				return fmt.Errorf("region pair %q/%q: %w", p.r1, p.r2, err)
			}
			stat, err := expected.TransBlockAverage(m)
			if err != nil {
				return fmt.Errorf("region pair %q/%q: %w", p.r1, p.r2, err)
			}
			stats[idx] = stat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(w, "region1\tregion2\tbalanced.sum\tn_valid\tbalanced.avg")
	for idx, p := range pairs {
		s := stats[idx]
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.r1, p.r2, formatFloat(s.Sum), s.NValid, formatFloat(s.Avg))
	}
	return nil
}

func formatFloat(v float64) string {
	if v != v { // NaN
		return "nan"
	}
	return fmt.Sprintf("%g", v)
}
