package dataset_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/govdash/internal/dataset"
	"github.com/wonny/govdash/internal/dataset/datasettest"
	"github.com/wonny/govdash/pkg/httputil"
	"github.com/wonny/govdash/pkg/logger"
)

type fetchFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetchFunc) Fetch(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

func TestIsRemote(t *testing.T) {
	assert.True(t, dataset.IsRemote("https://data.example.org/governance.csv"))
	assert.True(t, dataset.IsRemote("http://localhost:9000/g.xlsx?token=1"))
	assert.False(t, dataset.IsRemote("/data/governance.csv"))
	assert.False(t, dataset.IsRemote("C:/data/governance.csv"))
	assert.False(t, dataset.IsRemote("ftp://host/governance.csv"))
	assert.False(t, dataset.IsRemote("https:///nohost.csv"))
}

func TestURLLoader(t *testing.T) {
	body := datasettest.CSV(t, datasettest.Schema(), datasettest.Sample()...)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer server.Close()

	url := server.URL + "/files/governance.csv?rev=3"
	load := dataset.URLLoader(httputil.New(logger.Nop()), url, dataset.Options{Schema: datasettest.Schema()})

	table, err := load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, table.Len())
	assert.Equal(t, url, table.Source())
}

func TestURLLoader_UnsupportedExtension(t *testing.T) {
	fetched := false
	f := fetchFunc(func(ctx context.Context, url string) ([]byte, error) {
		fetched = true
		return []byte("a,b\n"), nil
	})

	_, err := dataset.URLLoader(f, "https://host/data.parquet", dataset.Options{})(context.Background())
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)
	assert.True(t, fetched)
}

func TestURLLoader_FetchError(t *testing.T) {
	boom := errors.New("boom")
	f := fetchFunc(func(ctx context.Context, url string) ([]byte, error) { return nil, boom })

	_, err := dataset.URLLoader(f, "https://host/data.csv", dataset.Options{})(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSourceLoader_File(t *testing.T) {
	f := fetchFunc(func(ctx context.Context, url string) ([]byte, error) {
		t.Fatal("file sources must not be fetched")
		return nil, nil
	})

	_, err := dataset.SourceLoader(f, "/does/not/exist.csv", dataset.Options{})(context.Background())
	assert.Error(t, err)
}
