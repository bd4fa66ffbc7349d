package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(apiURL, rawURL string) *Client {
	return &Client{
		HTTPClient:   http.DefaultClient,
		APIBaseURL:   apiURL,
		RawBaseURL:   rawURL,
		Org:          "sipgate-io",
		TemplateFile: ".env.example",
		Ref:          "master",
	}
}

func TestFetchCatalog(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orgs/sipgate-io/repos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "sipgateio-sendsms-node", "description": "Send SMS via the REST API"},
			{"name": "sipgateio-incomingcall-node", "description": "Handle incoming calls"}
		]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	descriptors, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	assert.Equal(t, "sipgateio-sendsms-node", descriptors[0].Repository)
	assert.Equal(t, "Send SMS via the REST API", descriptors[0].Description)
	// Listing order is preserved.
	assert.Equal(t, "sipgateio-incomingcall-node", descriptors[1].Repository)

	// Offsets are computed against the longest name; these two land within
	// the same tab stop of it.
	assert.Equal(t, 1, descriptors[0].TabOffset)
	assert.Equal(t, 1, descriptors[1].TabOffset)
}

func TestFetchCatalog_DecodeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.FetchCatalog(context.Background())
	require.Error(t, err)

	var cerr *CatalogError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, CatalogDecodeFailed, cerr.Type)
}

func TestFetchCatalog_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.FetchCatalog(context.Background())
	require.Error(t, err)

	var cerr *CatalogError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, CatalogFetchFailed, cerr.Type)
}

func TestFetchTemplate(t *testing.T) {
	t.Parallel()

	const template = "# token id\nTOKEN_ID=\nTOKEN=\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sipgate-io/sipgateio-sendsms-node/master/.env.example", r.URL.Path)
		_, _ = w.Write([]byte(template))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	got, err := c.FetchTemplate(context.Background(), "sipgateio-sendsms-node")
	require.NoError(t, err)
	assert.Equal(t, template, got)
}

func TestFetchTemplate_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.FetchTemplate(context.Background(), "missing-repo")
	require.Error(t, err)

	var cerr *CatalogError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, CatalogNotFound, cerr.Type)
}

func TestComputeOffsets_Recompute(t *testing.T) {
	t.Parallel()

	descriptors := []Descriptor{
		{Repository: "abc"},
		{Repository: "elevenchars"},
		{Repository: "twentycharacterslong"},
	}
	ComputeOffsets(descriptors)
	assert.Equal(t, []int{3, 2, 1}, []int{
		descriptors[0].TabOffset,
		descriptors[1].TabOffset,
		descriptors[2].TabOffset,
	})

	// Dropping the longest entry changes every offset.
	shorter := descriptors[:2]
	ComputeOffsets(shorter)
	assert.Equal(t, 2, shorter[0].TabOffset)
	assert.Equal(t, 1, shorter[1].TabOffset)
}
