package heredity

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// openGoogleStorage opens a gs://bucket/object path for reading. Pedigree
// files for large cohorts tend to live next to their genotype data in a
// bucket, so the loaders accept bucket paths anywhere a filename is
// accepted. Credentials come from the environment's application default
// credentials.
func openGoogleStorage(path string) (io.ReadCloser, error) {
	trimmed := strings.TrimPrefix(path, "gs://")
	bucket, object, found := strings.Cut(trimmed, "/")
	if !found || bucket == "" || object == "" {
		return nil, pfx.Err(fmt.Errorf("path %q is not of the form gs://bucket/object", path))
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, pfx.Err(err)
	}

	return &googleStorageReader{Reader: reader, client: client}, nil
}

// googleStorageReader closes the storage client along with the object
// reader.
type googleStorageReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *googleStorageReader) Close() error {
	readerErr := r.Reader.Close()
	if err := r.client.Close(); err != nil && readerErr == nil {
		readerErr = err
	}
	return readerErr
}
