package heredity

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Magic bytes used to detect compressed pedigree files.
var (
	magicGzip      = []byte{0x1f, 0x8b}
	magicZStandard = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// OpenPedigree reads a pedigree CSV from a local path or, for paths of
// the form gs://bucket/object, from Google Cloud Storage. Gzip- and
// zstd-compressed files are decompressed transparently.
func OpenPedigree(path string) (Pedigree, error) {
	var r io.ReadCloser
	var err error

	if strings.HasPrefix(path, "gs://") {
		r, err = openGoogleStorage(path)
	} else {
		r, err = os.Open(path)
	}
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	return ReadPedigree(r)
}

// ReadPedigree parses pedigree records from r, which may be gzip- or
// zstd-compressed. The expected format is a CSV with a header row naming
// the fields name, mother, father and trait. Mother and father must both
// be blank or both name people present in the file; trait is 1 or 0 when
// the phenotype was observed and blank otherwise. The returned Pedigree
// has been validated for referential integrity.
func ReadPedigree(r io.Reader) (Pedigree, error) {
	decompressed, _, err := decompressedReader(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	records, err := csv.NewReader(decompressed).ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(records) < 1 {
		return nil, pfx.Err(fmt.Errorf("pedigree file contains no header row"))
	}

	fields := make(map[string]int, len(records[0]))
	for i, field := range records[0] {
		fields[strings.TrimSpace(field)] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, exists := fields[required]; !exists {
			return nil, pfx.Err(fmt.Errorf("pedigree header is missing the %q field", required))
		}
	}

	ped := make(Pedigree, len(records)-1)
	for _, record := range records[1:] {
		person := Person{
			Name:   record[fields["name"]],
			Mother: record[fields["mother"]],
			Father: record[fields["father"]],
		}

		switch record[fields["trait"]] {
		case "1":
			t := true
			person.Trait = &t
		case "0":
			t := false
			person.Trait = &t
		case "":
			// Unobserved
		default:
			return nil, pfx.Err(fmt.Errorf("person %q has trait value %q; expected 1, 0, or blank", person.Name, record[fields["trait"]]))
		}

		if _, exists := ped[person.Name]; exists {
			return nil, pfx.Err(fmt.Errorf("person %q appears more than once", person.Name))
		}
		ped[person.Name] = person
	}

	if err := ped.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}

// decompressedReader sniffs the stream's magic bytes and wraps it in the
// matching decompressor, passing plain data through untouched.
func decompressedReader(r io.Reader) (io.Reader, Compression, error) {
	buffered := bufio.NewReader(r)

	magic, err := buffered.Peek(4)
	if err != nil && err != io.EOF {
		return nil, CompressionDisabled, pfx.Err(err)
	}

	switch {
	case bytes.HasPrefix(magic, magicGzip):
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, CompressionGzip, pfx.Err(err)
		}
		return gz, CompressionGzip, nil

	case bytes.HasPrefix(magic, magicZStandard):
		zr, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, CompressionZStandard, pfx.Err(err)
		}
		return zr.IOReadCloser(), CompressionZStandard, nil
	}

	return buffered, CompressionDisabled, nil
}
