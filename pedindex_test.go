package heredity

import (
	"path/filepath"
	"testing"
)

func TestPedigreeIndexRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.pdx")
	ped := familyPedigree()

	idx, err := CreatePedigreeIndex(path, ped, "family.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	if idx.Metadata.Filename != "family.csv" {
		t.Errorf("Got filename %q, expected family.csv", idx.Metadata.Filename)
	}
	if idx.Metadata.NPeople != 3 {
		t.Errorf("Got %d people in metadata, expected 3", idx.Metadata.NPeople)
	}

	loaded, err := idx.ReadPedigree()
	if err != nil {
		t.Fatal(err)
	}

	checkFamilyPedigree(t, loaded)
}

func TestPedigreeIndexReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.pdx")

	idx, err := CreatePedigreeIndex(path, familyPedigree(), "family.csv")
	if err != nil {
		t.Fatal(err)
	}
	idx.Close()

	reopened, err := OpenPedigreeIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if reopened.Metadata.NPeople != 3 {
		t.Errorf("Got %d people in reopened metadata, expected 3", reopened.Metadata.NPeople)
	}

	loaded, err := reopened.ReadPedigree()
	if err != nil {
		t.Fatal(err)
	}
	checkFamilyPedigree(t, loaded)
}

func TestPedigreeIndexResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.pdx")
	ped := familyPedigree()

	idx, err := CreatePedigreeIndex(path, ped, "family.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	dists, err := Infer(ped, DefaultModel())
	if err != nil {
		t.Fatal(err)
	}

	if err := idx.WriteResults(dists); err != nil {
		t.Fatal(err)
	}

	loaded, err := idx.ReadResults()
	if err != nil {
		t.Fatal(err)
	}

	for name, want := range dists {
		got, exists := loaded[name]
		if !exists {
			t.Fatalf("no stored result for %q", name)
		}
		for g := 0; g < 3; g++ {
			approx(t, got.Gene[g], want.Gene[g], 1e-12, name+" stored gene posterior")
		}
		for ti := 0; ti < 2; ti++ {
			approx(t, got.Trait[ti], want.Trait[ti], 1e-12, name+" stored trait posterior")
		}
	}
}

func TestPedigreeIndexRejectsInvalidPedigree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdx")
	ped := Pedigree{
		"B": {Name: "B", Mother: "A", Father: "C"},
	}

	if _, err := CreatePedigreeIndex(path, ped, "bad.csv"); err == nil {
		t.Error("expected an error for a pedigree with dangling parents")
	}
}

func TestWhichSQLiteDriver(t *testing.T) {
	if driver := WhichSQLiteDriver(); driver != "sqlite" && driver != "sqlite3" {
		t.Errorf("Got unexpected driver %q", driver)
	}
}
