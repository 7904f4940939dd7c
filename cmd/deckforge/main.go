// Command deckforge builds the bundled slide decks.
//
// Usage:
//
//	deckforge [options] [deck ...]
//
// With no deck names every deck named in the config file is built, or every
// registered deck when the config names none. Use -inspect to print the
// outline of an existing .pptx or .html file instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tsawler/deckforge"
	"github.com/tsawler/deckforge/config"
	"github.com/tsawler/deckforge/decks"
	"github.com/tsawler/deckforge/format"
	"github.com/tsawler/deckforge/htmldoc"
	"github.com/tsawler/deckforge/ocr"
	"github.com/tsawler/deckforge/pptx"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("deckforge: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns the exit status.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("deckforge", flag.ContinueOnError)
	var (
		list     = fs.Bool("list", false, "List registered decks and exit")
		cfgPath  = fs.String("config", "", "YAML config file")
		outDir   = fs.String("out", "", "Output directory (created if missing)")
		formats  = fs.String("format", "", "Comma-separated output formats: pptx,html,md,png")
		inspect  = fs.String("inspect", "", "Print the outline of a .pptx or .html file and exit")
		author   = fs.String("author", "", "Author recorded in the deck metadata")
		showInfo = fs.Bool("v", false, "Also report informational layout findings")
		verify   = fs.Bool("verify", false, "OCR each slide preview and report unreadable titles (needs -tags ocr)")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: deckforge [options] [deck ...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *inspect != "" {
		if err := inspectFile(stdout, *inspect); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Print(err)
		return 1
	}
	for _, path := range cfg.DeckFiles {
		if _, err := decks.RegisterFile(path); err != nil {
			log.Print(err)
			return 1
		}
	}

	if *list {
		for _, e := range decks.All() {
			fmt.Fprintf(stdout, "%-20s %s\n", e.Name, e.Title)
		}
		return 0
	}

	if *outDir != "" {
		cfg.OutputDir = *outDir
		cfg.CreateDirs = true
	}
	if *formats != "" {
		cfg.Formats = strings.Split(*formats, ",")
	}
	if *author != "" {
		cfg.Metadata.Author = *author
	}

	names := fs.Args()
	if len(names) == 0 {
		names = cfg.Decks
	}
	if len(names) == 0 {
		names = decks.Names()
	}

	var client *ocr.Client
	if *verify {
		client, err = ocr.New()
		if err != nil {
			log.Print(err)
			return 1
		}
		defer client.Close()
	}

	status := 0
	for _, name := range names {
		gen := deckforge.Open(name).Configure(cfg)
		if *showInfo {
			gen = gen.IncludeLayoutInfo()
		}
		if client != nil {
			gen = gen.Verify(client)
		}
		res, warnings, err := gen.Save()
		for _, w := range warnings {
			log.Printf("%s: %s", name, w)
		}
		if err != nil {
			log.Printf("%s: %v", name, err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "Presentation saved to %s\n", res.Path)
		for _, f := range res.Files {
			if f.Path != res.Path {
				fmt.Fprintf(stdout, "  %s: %s\n", f.Format, f.Path)
			}
		}
		fmt.Fprintf(stdout, "Total slides: %d\n", res.Slides)
	}
	return status
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.FromEnv()
	}
	return config.Load(path)
}

// inspectFile prints the metadata and slide titles of a presentation or
// handout.
func inspectFile(w io.Writer, path string) error {
	switch format.Detect(path) {
	case format.PPTX:
		r, err := pptx.Open(path)
		if err != nil {
			return err
		}
		defer r.Close()
		meta := r.Metadata()
		fmt.Fprintf(w, "Title: %s\n", meta.Title)
		if meta.Author != "" {
			fmt.Fprintf(w, "Author: %s\n", meta.Author)
		}
		fmt.Fprintf(w, "Slides: %d\n", r.SlideCount())
		printTitles(w, r.Titles())
		return nil
	case format.HTML:
		r, err := htmldoc.Open(path)
		if err != nil {
			return err
		}
		defer r.Close()
		fmt.Fprintf(w, "Title: %s\n", r.Handout().Title)
		fmt.Fprintf(w, "Sections: %d\n", r.SectionCount())
		printTitles(w, r.Titles())
		return nil
	default:
		return fmt.Errorf("%s: cannot inspect %s files", path, format.Detect(path))
	}
}

func printTitles(w io.Writer, titles []string) {
	for i, t := range titles {
		fmt.Fprintf(w, "%3d. %s\n", i+1, t)
	}
}
