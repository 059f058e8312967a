// Command morphgnt decodes MorphGNT morphological tags and corpus
// files from the command line.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	morphgnt "github.com/sblgnt/morphgnt"
)

// ParseCmd decodes tags given as arguments.
type ParseCmd struct {
	Tags []string `arg:"" name:"tag" help:"MorphGNT tags to decode, e.g. 'V- 3AAI-S--'"`
}

func (c *ParseCmd) Run(ctx *Context) error {
	for _, tag := range c.Tags {
		p, err := morphgnt.ParseTag(tag)
		if err != nil {
			color.Red("%-12s %v", tag, err)
			continue
		}
		fmt.Printf("%-12s %s\n", tag, p)
	}
	return nil
}

// AnalyzeCmd decodes corpus files and prints attribute frequencies.
type AnalyzeCmd struct {
	Files []string `arg:"" optional:"" name:"file" help:"MorphGNT corpus files (default: corpus_dir from config)" type:"existingfile"`
}

func (c *AnalyzeCmd) Run(ctx *Context) error {
	files, err := resolveFiles(ctx, c.Files)
	if err != nil {
		return err
	}

	stats := morphgnt.NewStats()
	badLines := 0

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		sc := bufio.NewScanner(f)
		lineNo := 0
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			w, err := morphgnt.ParseLine(line)
			if err != nil {
				badLines++
				if ctx.Verbose {
					color.Yellow("%s:%d: %v", path, lineNo, err)
				}
				continue
			}
			stats.Add(w)
		}
		err = sc.Err()
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	color.Cyan("%d words decoded, %d bad lines", stats.Words, badLines)
	printCounts("part of speech", stats.ByPOS, stats.Words)
	printCounts("tense-form", stats.ByTenseForm, stats.Words)
	printCounts("case", stats.ByCase, stats.Words)
	return nil
}

// printCounts prints one frequency table, most frequent first.
func printCounts[K interface {
	comparable
	fmt.Stringer
}](title string, counts map[K]int, total int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]K, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return counts[keys[i]] > counts[keys[j]]
	})
	fmt.Printf("\nby %s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %-32s %7d  %5.1f%%\n",
			k.String(), counts[k], 100*float64(counts[k])/float64(total))
	}
}

// LoadCmd ingests corpus files into a SQLite database.
type LoadCmd struct {
	DB    string   `help:"SQLite database path (overrides config)"`
	Files []string `arg:"" optional:"" name:"file" help:"MorphGNT corpus files (default: corpus_dir from config)" type:"existingfile"`
}

func (c *LoadCmd) Run(ctx *Context) error {
	files, err := resolveFiles(ctx, c.Files)
	if err != nil {
		return err
	}

	dbPath := c.DB
	if dbPath == "" {
		dbPath = ctx.Config.DatabasePath
	}
	store, err := morphgnt.OpenStore(dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer store.Close()

	total := 0
	for _, path := range files {
		words, err := morphgnt.LoadFile(path)
		if err != nil {
			return err
		}
		if err := store.InsertWords(words); err != nil {
			return fmt.Errorf("insert %s: %w", path, err)
		}
		total += len(words)
		if ctx.Verbose {
			color.Blue("%s: %d words", path, len(words))
		}
	}
	color.Green("loaded %d words into %s", total, dbPath)
	return nil
}

// resolveFiles falls back to every .txt file under the configured
// corpus directory when no files were given on the command line.
func resolveFiles(ctx *Context, files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}
	if ctx.Config.CorpusDir == "" {
		return nil, errNoInput
	}
	matches, err := filepath.Glob(filepath.Join(ctx.Config.CorpusDir, "*.txt"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no corpus files in %s", ctx.Config.CorpusDir)
	}
	return matches, nil
}

var errNoInput = errors.New("no corpus files given and no corpus_dir configured")

// Context carries global flags and config to every command.
type Context struct {
	Config  morphgnt.Config
	Verbose bool
}

var CLI struct {
	Config  string     `help:"Configuration file path" default:"morphgnt.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Parse   ParseCmd   `cmd:"" help:"Decode one or more tags"`
	Analyze AnalyzeCmd `cmd:"" help:"Decode corpus files and print attribute frequencies"`
	Load    LoadCmd    `cmd:"" help:"Load corpus files into a SQLite database"`
}

func main() {
	ctx := kong.Parse(&CLI)

	cfg, err := morphgnt.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(&Context{Config: cfg, Verbose: CLI.Verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
