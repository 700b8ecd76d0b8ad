package heredity

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PedigreeIndex wraps a SQLite pedigree index file (conventionally .pdx):
// the same pedigree a CSV holds, plus metadata and, once inference has
// run, each person's posterior distributions. Keeping pedigrees in SQLite
// lets cohort tooling query them with ordinary SQL instead of re-parsing
// text files.
type PedigreeIndex struct {
	DB       *sqlx.DB
	Metadata *PedigreeMetadata
}

func (idx *PedigreeIndex) Close() error {
	return idx.DB.Close()
}

// PersonRow conforms to the rows of the SQLite table "Person", and can be
// easily parsed with sqlx. Trait is NULL when the phenotype was not
// observed.
type PersonRow struct {
	Name   string
	Mother string
	Father string
	Trait  sql.NullInt64
}

// ResultRow conforms to the rows of the SQLite table "Result", one row
// per person with their normalized posterior distributions.
type ResultRow struct {
	Name       string
	Gene0      float64 `db:"gene0"`
	Gene1      float64 `db:"gene1"`
	Gene2      float64 `db:"gene2"`
	TraitFalse float64 `db:"trait_false"`
	TraitTrue  float64 `db:"trait_true"`
}

// PedigreeMetadata conforms to the rows of the SQLite table "Metadata".
type PedigreeMetadata struct {
	Filename          string
	NPeople           uint `db:"n_people"`
	IndexCreationTime Time `db:"index_creation_time"`
}

const pedigreeIndexSchema = `
CREATE TABLE IF NOT EXISTS Person (
	name TEXT PRIMARY KEY,
	mother TEXT NOT NULL DEFAULT '',
	father TEXT NOT NULL DEFAULT '',
	trait INTEGER
);
CREATE TABLE IF NOT EXISTS Metadata (
	filename TEXT,
	n_people INTEGER,
	index_creation_time INTEGER
);
CREATE TABLE IF NOT EXISTS Result (
	name TEXT PRIMARY KEY,
	gene0 REAL,
	gene1 REAL,
	gene2 REAL,
	trait_false REAL,
	trait_true REAL
);
`

// CreatePedigreeIndex creates a new index file at path and populates its
// Person and Metadata tables from the pedigree. filename records the
// provenance of the data, typically the source CSV's name.
func CreatePedigreeIndex(path string, ped Pedigree, filename string) (*PedigreeIndex, error) {
	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	idx, err := OpenPedigreeIndex(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := idx.DB.Exec(pedigreeIndexSchema); err != nil {
		idx.Close()
		return nil, pfx.Err(err)
	}

	for _, name := range ped.SortedNames() {
		person := ped[name]

		var trait sql.NullInt64
		if person.Trait != nil {
			trait.Valid = true
			if *person.Trait {
				trait.Int64 = 1
			}
		}

		if _, err := idx.DB.Exec(
			"INSERT INTO Person (name, mother, father, trait) VALUES (?, ?, ?, ?)",
			person.Name, person.Mother, person.Father, trait,
		); err != nil {
			idx.Close()
			return nil, pfx.Err(err)
		}
	}

	if _, err := idx.DB.Exec(
		"INSERT INTO Metadata (filename, n_people, index_creation_time) VALUES (?, ?, ?)",
		filename, len(ped), time.Now().Unix(),
	); err != nil {
		idx.Close()
		return nil, pfx.Err(err)
	}

	idx.Metadata = &PedigreeMetadata{}
	_ = idx.DB.Get(idx.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return idx, nil
}

// ReadPedigree loads the Person table back into a validated Pedigree.
func (idx *PedigreeIndex) ReadPedigree() (Pedigree, error) {
	rows, err := idx.DB.Queryx("SELECT name, mother, father, trait FROM Person ORDER BY name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	ped := make(Pedigree)
	var row PersonRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}

		person := Person{
			Name:   row.Name,
			Mother: row.Mother,
			Father: row.Father,
		}
		if row.Trait.Valid {
			t := row.Trait.Int64 != 0
			person.Trait = &t
		}

		ped[person.Name] = person
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}

// WriteResults replaces the Result table with the given normalized
// distributions.
func (idx *PedigreeIndex) WriteResults(dists Distributions) error {
	if _, err := idx.DB.Exec("DELETE FROM Result"); err != nil {
		return pfx.Err(err)
	}

	for name, dist := range dists {
		if _, err := idx.DB.Exec(
			"INSERT INTO Result (name, gene0, gene1, gene2, trait_false, trait_true) VALUES (?, ?, ?, ?, ?, ?)",
			name, dist.Gene[0], dist.Gene[1], dist.Gene[2],
			dist.Trait[TraitIndex(false)], dist.Trait[TraitIndex(true)],
		); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

// ReadResults loads the Result table written by WriteResults.
func (idx *PedigreeIndex) ReadResults() (Distributions, error) {
	rows, err := idx.DB.Queryx("SELECT name, gene0, gene1, gene2, trait_false, trait_true FROM Result ORDER BY name ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	dists := make(Distributions)
	var row ResultRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}

		dist := &Distribution{Gene: [3]float64{row.Gene0, row.Gene1, row.Gene2}}
		dist.Trait[TraitIndex(false)] = row.TraitFalse
		dist.Trait[TraitIndex(true)] = row.TraitTrue

		if _, exists := dists[row.Name]; exists {
			return nil, pfx.Err(fmt.Errorf("duplicate result row for %q", row.Name))
		}
		dists[row.Name] = dist
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return dists, nil
}
