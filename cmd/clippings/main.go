package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	clippings "github.com/giulianopz/go-clippings"
	"golang.org/x/sync/errgroup"
)

var (
	output     string
	pretty     bool
	sanitize   bool
	check      bool
	configPath string
	jobs       int
	timeout    = 30 * time.Second
	verbose    bool
)

func handle(err error) {
	if err != nil {
		exit(err.Error())
	}
}

func exit(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {

	flag.StringVar(&output, "output", formatText, "the result output format: 'text', 'html', 'markdown' or 'json'")
	flag.StringVar(&output, "o", formatText, "the result output format: 'text', 'html', 'markdown' or 'json'")
	flag.BoolVar(&pretty, "pretty", false, "indent html and json output")
	flag.BoolVar(&sanitize, "sanitize", false, "sanitize the extracted html")
	flag.BoolVar(&check, "check", false, "only report whether each source is probably readerable")
	flag.StringVar(&configPath, "config", "", "path to a yaml file with extraction options")
	flag.IntVar(&jobs, "j", 4, "number of sources processed in parallel")
	flag.DurationVar(&timeout, "timeout", timeout, "timeout for fetching each url")
	flag.BoolVar(&verbose, "verbose", false, "enable logs")
	flag.BoolVar(&verbose, "v", false, "enable logs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: clippings [flags] <url|file|-> ...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	sources := flag.Args()
	if len(sources) == 0 {
		exit("missing url")
	}

	var opts = []clippings.Option{clippings.Logger(slog.Default())}
	if configPath != "" {
		fc, err := loadConfigFile(configPath)
		handle(err)
		fileOpts, err := fc.options()
		handle(err)
		opts = append(opts, fileOpts...)
	}

	r, err := newRenderer(output, pretty, sanitize)
	handle(err)

	results, err := run(context.Background(), sources, jobs, func(ctx context.Context, source string) (string, error) {
		htmlSource, err := readSource(ctx, source)
		if err != nil {
			return "", err
		}
		if check {
			ok, err := clippings.IsProbablyReaderable(htmlSource, opts...)
			if err != nil {
				return "", fmt.Errorf("%s: %w", source, err)
			}
			return strconv.FormatBool(ok), nil
		}
		res, err := clippings.Extract(htmlSource, opts...)
		if err != nil {
			return "", fmt.Errorf("%s: %w", source, err)
		}
		return r.render(source, res)
	})
	handle(err)

	for i, out := range results {
		if len(sources) > 1 && check {
			fmt.Printf("%s\t%s\n", sources[i], out)
			continue
		}
		fmt.Println(out)
	}
}

// run processes sources with at most limit workers and returns the outputs
// in the order of sources. The first failure cancels the others.
func run(ctx context.Context, sources []string, limit int, process func(context.Context, string) (string, error)) ([]string, error) {
	results := make([]string, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, source := range sources {
		g.Go(func() error {
			out, err := process(gctx, source)
			if err != nil {
				return err
			}
			slog.Debug("processed", "source", source, "length", len(out))
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readSource reads html from a url, a file or stdin when source is "-".
func readSource(ctx context.Context, source string) (string, error) {
	if source == "-" {
		bs, err := io.ReadAll(os.Stdin)
		return string(bs), err
	}
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		bs, err := os.ReadFile(source)
		return string(bs), err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %s", source, resp.Status)
	}
	bs, err := io.ReadAll(resp.Body)
	return string(bs), err
}
