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
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to index")
	idxPath := flag.String("pdx", "", "Filename of the pdx (index) file to create")
	infer := flag.Bool("infer", true, "Run inference and store the posteriors in the index")
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

	if *idxPath == "" {
		*idxPath = *path + ".pdx"
	}

	if strings.HasPrefix(*idxPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*idxPath = filepath.Join(usr.HomeDir, (*idxPath)[2:])
	}

	log.Println("Using the", heredity.WhichSQLiteDriver(), "SQLite driver")
	log.Println("Opening pedigree:", *path)
	ped, err := heredity.OpenPedigree(*path)
	if err != nil {
		log.Fatalln(err)
	}

	idx, err := heredity.CreatePedigreeIndex(*idxPath, ped, filepath.Base(*path))
	if err != nil {
		log.Fatalln(err)
	}
	defer idx.Close()

	log.Printf("PDX Metadata: %+v\n", idx.Metadata)

	rows, err := idx.DB.Queryx("SELECT name, mother, father, trait FROM Person ORDER BY name ASC")
	if err != nil {
		log.Fatalln(err)
	}
	defer rows.Close()

	i := 0
	var row heredity.PersonRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("%d) %+v\n", i, row)
		i++
	}
	rows.Close()

	log.Println("Indexed", i, "people")

	if !*infer {
		return
	}

	dists, err := heredity.Infer(ped, heredity.DefaultModel())
	if err != nil {
		log.Fatalln(err)
	}

	if err := idx.WriteResults(dists); err != nil {
		log.Fatalln(err)
	}

	log.Println("Stored posterior distributions for", len(dists), "people")
}
