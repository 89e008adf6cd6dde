package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"crosswarped.com/weave"
	"crosswarped.com/weave/pkg/gridconfig"
	"crosswarped.com/weave/pkg/primitives"
	xw_generator "crosswarped.com/weave/xw_generator/generator"
)

func main() {

	firstOnly := flag.Bool("first", false, "Stop at the first grid found")
	doAll := flag.Bool("all", false, "Print every improving grid without prompting")
	width := flag.Int("width", 13, "The width of the grid")
	height := flag.Int("height", 13, "The height of the grid")
	wrap := flag.Bool("wrap", false, "Wrap horizontal words around the side edges")
	trials := flag.Int("trials", 1000, "Trials per worker")
	workers := flag.Int("workers", 4, "Concurrent workers")
	seed := flag.Uint64("seed", 0, "Base random seed (0 = time-based)")
	configPath := flag.String("config", "", "HCL settings file (flags set explicitly still win)")
	wordFile := flag.String("words", "", "Word list file, one word per line")
	loadWordsFromCloud := flag.Bool("cloud", false, "Load words from cloud")
	obscure := flag.Bool("obscure", false, "Include obscure words")
	scope := flag.String("scope", "regular", "The scope of the words to load")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the generator")

	flag.Parse()

	if *firstOnly && *doAll {
		fmt.Println("Cannot use both -first and -all")
		os.Exit(1)
	}
	if *wordFile == "" && !*loadWordsFromCloud {
		fmt.Println("Need a word source: -words <file> or -cloud")
		os.Exit(1)
	}

	cfg := primitives.Config{Width: *width, Height: *height, Wrap: *wrap}
	params := xw_generator.Params{Trials: *trials, Workers: *workers, Seed: *seed}
	if *configPath != "" {
		settings, err := gridconfig.Load(*configPath)
		if err != nil {
			fmt.Println("Error loading config:", err)
			os.Exit(1)
		}
		cfg, params = settings.Grid, settings.Search
		// Flags given on the command line override the file.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "width":
				cfg.Width = *width
			case "height":
				cfg.Height = *height
			case "wrap":
				cfg.Wrap = *wrap
			case "trials":
				params.Trials = *trials
			case "workers":
				params.Workers = *workers
			case "seed":
				params.Seed = *seed
			}
		})
	}

	ctx := context.Background()

	var words []string
	if *loadWordsFromCloud {
		fmt.Println("Loading words from cloud...")
		maxLen := max(cfg.Width, cfg.Height)
		preferred, obscureWords, err := weave.LoadWordsFromCloud(ctx, *scope, *obscure, maxLen)
		if err != nil {
			fmt.Println("Error loading words from cloud:", err)
			os.Exit(1)
		}
		words = preferred
		if *obscure {
			words = append(words, obscureWords...)
		}
	} else {
		var err error
		words, err = weave.LoadWordsFromFile(*wordFile)
		if err != nil {
			fmt.Println("Error loading words:", err)
			os.Exit(1)
		}
	}
	fmt.Println("Words:", len(words))

	gen, err := xw_generator.CreateGenerator(words, cfg, params)
	if err != nil {
		fmt.Println("Error creating generator:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	var last *primitives.Grid
	for grid := range gen.PossibleGrids(ctx) {
		if err := ctx.Err(); err != nil {
			fmt.Println("Context error:", err)
			break
		}

		last = grid
		fmt.Println("--------------------------------")
		fmt.Println(grid.Repr())
		fmt.Printf("Density: %.3f (%d words placed)\n", grid.Density(), len(grid.PlacedWords()))

		if *firstOnly {
			break
		}

		if *doAll {
			continue
		}

		// Wait for user input and determine if they want to continue.
		// Continue (any key), or stop (n)
		fmt.Print("Continue? [Y/n]: ")
		var input string
		fmt.Scanln(&input)
		if input == "s" || input == "S" {
			for _, p := range grid.PlacedWords() {
				fmt.Println(" ", p)
			}
		}
		if input == "n" || input == "N" {
			break
		}
	}

	fmt.Println("--------------------------------")
	if last != nil {
		for _, l := range last.Numbering() {
			fmt.Printf("%3d (%d,%d)", l.Number, l.X, l.Y)
			if l.Across {
				fmt.Print(" across")
			}
			if l.Down {
				fmt.Print(" down")
			}
			fmt.Println()
		}
	}
	fmt.Println("Done")

	if ctx.Err() != nil {
		fmt.Println("Context error:", ctx.Err())
	}
}
