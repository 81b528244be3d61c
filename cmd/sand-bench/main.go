package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"falling-sand/internal/sims/sand"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	width      int
	height     int
	ticks      int
	seed       int64
	paramsPath string

	threads int
	offset  int
	scan    string
	plot    bool

	threadList string
	workers    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sand-bench",
		Short:         "headless falling-sand benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().IntVar(&width, "w", 256, "grid width")
	rootCmd.PersistentFlags().IntVar(&height, "h", 192, "grid height")
	rootCmd.PersistentFlags().IntVar(&ticks, "ticks", 300, "ticks per run")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1337, "random seed")
	rootCmd.PersistentFlags().StringVar(&paramsPath, "params", "", "YAML file overriding species parameters")

	def := sand.DefaultConfig()

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the benchmark scene once and report mass drift and timing",
		RunE:  runBench,
	}
	runCmd.Flags().IntVar(&threads, "threads", def.Threads, "column chunks per tick")
	runCmd.Flags().IntVar(&offset, "chunk-offset", def.ChunkOffset, "maximum random shift of chunk borders")
	runCmd.Flags().StringVar(&scan, "scan", def.Scan.String(), "chunk scan order ("+strings.Join(sand.ScanOrderNames(), ", ")+")")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot particle count per tick")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the scene over thread counts and scan orders",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&threadList, "threads", "1,2,4,8,16,32", "comma-separated thread counts")
	sweepCmd.Flags().IntVar(&offset, "chunk-offset", def.ChunkOffset, "maximum random shift of chunk borders")
	sweepCmd.Flags().IntVar(&workers, "workers", 1, "scenarios run concurrently")

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "print the effective species parameter table as YAML",
		RunE:  printParams,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, paramsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func baseConfig() (sand.Config, error) {
	cfg := sand.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	cfg.ChunkOffset = offset
	if paramsPath != "" {
		params, err := sand.LoadParams(paramsPath)
		if err != nil {
			return sand.Config{}, err
		}
		cfg.Params = params
	}
	return cfg, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig()
	if err != nil {
		return err
	}
	cfg.Threads = threads
	if cfg.Scan, err = sand.ParseScanOrder(scan); err != nil {
		return err
	}

	res := runScenario(cfg, ticks)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "grid %dx%d, %d ticks, %d threads, %s scan\n", cfg.Width, cfg.Height, ticks, res.threads, res.scan)
	fmt.Fprintf(out, "particles %d -> %d (settled %d -> %d, drift %+.3f%%, smoke left %d)\n",
		res.initialMass, res.finalMass, res.initialSettled, res.finalSettled, 100*res.drift(), res.smoke)
	fmt.Fprintf(out, "elapsed %s (%s/tick)\n", res.elapsed.Round(time.Millisecond), res.perTick().Round(time.Microsecond))

	if plot && len(res.series) > 0 {
		graph := asciigraph.Plot(res.series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("particles per tick"),
		)
		fmt.Fprintln(out)
		fmt.Fprintln(out, graph)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	base, err := baseConfig()
	if err != nil {
		return err
	}
	counts, err := parseThreadList(threadList)
	if err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}

	var configs []sand.Config
	for _, n := range counts {
		for i := range sand.ScanOrderNames() {
			cfg := base
			cfg.Threads = n
			cfg.Scan = sand.ScanOrder(i)
			configs = append(configs, cfg)
		}
	}

	jobs := make(chan sand.Config)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				results <- runScenario(cfg, ticks)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, cfg := range configs {
			jobs <- cfg
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sortResults(all)
	writeSweep(cmd.OutOrStdout(), all)
	return nil
}

func sortResults(all []scenarioResult) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].threads != all[j].threads {
			return all[i].threads < all[j].threads
		}
		return all[i].scan < all[j].scan
	})
}

func writeSweep(out io.Writer, all []scenarioResult) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "threads\tscan\tdrift %\tsmoke\tper tick\t")
	for _, res := range all {
		fmt.Fprintf(tw, "%d\t%s\t%+.3f\t%d\t%s\t\n",
			res.threads, res.scan, 100*res.drift(), res.smoke, res.perTick().Round(time.Microsecond))
	}
	tw.Flush()
}

func parseThreadList(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid thread count %q", field)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no thread counts given")
	}
	return out, nil
}

func printParams(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Params); err != nil {
		return err
	}
	return enc.Close()
}
