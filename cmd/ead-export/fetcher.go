package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hutchesonn/camh-ead-exporter/record"
)

// fetcher reads records from URLs or local files.
type fetcher struct {
	httpClient *http.Client
}

func newFetcher(timeout time.Duration) *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// fetch returns the raw bytes behind urlOrPath.
func (f *fetcher) fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		data, err := os.ReadFile(urlOrPath)
		return data, errors.Wrapf(err, "read %s", urlOrPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", urlOrPath)
	}
	req.Header.Set("Accept", "application/json, application/yaml")
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", urlOrPath)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}
	data, err := io.ReadAll(resp.Body)
	return data, errors.Wrapf(err, "read body of %s", urlOrPath)
}

// loadRecord fetches and decodes one record document.
func (f *fetcher) loadRecord(ctx context.Context, urlOrPath string) (*record.Document, error) {
	data, err := f.fetch(ctx, urlOrPath)
	if err != nil {
		return nil, err
	}
	doc, err := record.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", urlOrPath)
	}
	return doc, nil
}
