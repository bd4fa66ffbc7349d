// Package catalog fetches the remote example-project catalog and per-example
// environment templates over an unauthenticated read-only transport.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/telkam/iosetup/configs"
	"github.com/telkam/iosetup/internal/align"
	"github.com/telkam/iosetup/internal/debug"
)

// Descriptor represents one remote catalog entry.
type Descriptor struct {
	// Repository is the example repository name.
	Repository string
	// Description is the short human-readable summary.
	Description string
	// TabOffset is derived display padding, not authoritative; it is
	// recomputed whenever the catalog list changes.
	TabOffset int
}

// Client fetches the catalog from a GitHub-hosted organization.
type Client struct {
	// HTTPClient is the HTTP client for all requests.
	HTTPClient *http.Client
	// APIBaseURL is the API endpoint base (e.g. https://api.github.com).
	APIBaseURL string
	// RawBaseURL is the raw content base (e.g. https://raw.githubusercontent.com).
	RawBaseURL string
	// Org is the organization whose repositories form the catalog.
	Org string
	// TemplateFile is the environment template path inside each repository.
	TemplateFile string
	// Ref is the branch the template is fetched from.
	Ref string
}

// NewClient creates a catalog client from the library defaults.
func NewClient() *Client {
	d := configs.Defaults.Catalog
	return &Client{
		HTTPClient:   &http.Client{Timeout: d.Timeout()},
		APIBaseURL:   d.APIBaseURL,
		RawBaseURL:   d.RawBaseURL,
		Org:          d.Org,
		TemplateFile: d.TemplateFile,
		Ref:          d.DefaultRef,
	}
}

// repoEntry is the subset of the repository listing payload we consume.
type repoEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FetchCatalog lists the organization's repositories and returns them as
// descriptors in listing order, with display offsets computed.
func (c *Client) FetchCatalog(ctx context.Context) ([]Descriptor, error) {
	url := fmt.Sprintf("%s/orgs/%s/repos?per_page=100", c.APIBaseURL, c.Org)
	debug.Debug("[catalog] fetching repository listing from %s", url)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var entries []repoEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, newCatalogError(CatalogDecodeFailed, url, "failed to decode repository listing", err)
	}

	descriptors := make([]Descriptor, 0, len(entries))
	for _, e := range entries {
		descriptors = append(descriptors, Descriptor{
			Repository:  e.Name,
			Description: e.Description,
		})
	}
	ComputeOffsets(descriptors)

	debug.DebugValue("catalog entries", len(descriptors))
	return descriptors, nil
}

// FetchTemplate downloads the environment template of one repository.
func (c *Client) FetchTemplate(ctx context.Context, repository string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.RawBaseURL, c.Org, repository, c.Ref, c.TemplateFile)
	debug.Debug("[catalog] fetching template from %s", url)

	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ComputeOffsets recomputes the TabOffset of every descriptor in place.
func ComputeOffsets(descriptors []Descriptor) {
	names := make([]string, len(descriptors))
	for i, d := range descriptors {
		names[i] = d.Repository
	}
	stops := align.TabStops(names)
	for i := range descriptors {
		descriptors[i].TabOffset = stops[i]
	}
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newCatalogError(CatalogFetchFailed, url, "failed to build request", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, newCatalogError(CatalogFetchFailed, url, "request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, newCatalogError(CatalogNotFound, url, "resource not found", nil)
	default:
		return nil, newCatalogError(CatalogFetchFailed, url,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newCatalogError(CatalogFetchFailed, url, "failed to read response body", err)
	}
	return body, nil
}
