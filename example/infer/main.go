package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/openpedigree/heredity"
)

func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to process (.csv, .csv.gz, .csv.zst, or a gs:// path)")
	modelPath := flag.String("model", "", "Optional YAML file with alternate model constants")
	workers := flag.Int("workers", 1, "Number of goroutines to shard trait hypotheses across")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	ped, err := heredity.OpenPedigree(*path)
	if err != nil {
		log.Fatalln(err)
	}

	model := heredity.DefaultModel()
	if *modelPath != "" {
		model, err = heredity.OpenModel(*modelPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	log.Println("Loaded", len(ped), "people; enumerating up to", heredity.HypothesisCount(len(ped)), "hypotheses")

	dists, err := heredity.InferWorkers(ped, model, *workers)
	if err != nil {
		log.Fatalln(err)
	}

	for _, name := range ped.SortedNames() {
		dist := dists[name]

		fmt.Printf("%s:\n", name)
		fmt.Printf("  Gene:\n")
		for g := 2; g >= 0; g-- {
			fmt.Printf("    %d: %.4f\n", g, dist.Gene[g])
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    True: %.4f\n", dist.Trait[heredity.TraitIndex(true)])
		fmt.Printf("    False: %.4f\n", dist.Trait[heredity.TraitIndex(false)])
	}
}
