package testutil

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err, "parse html")
	return doc
}

// ParseResponse reads and closes resp.Body and parses it as HTML.
func ParseResponse(t testing.TB, resp *http.Response) *goquery.Document {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read body")
	return ParseHTML(t, body)
}

// TrailLabels returns the breadcrumb labels rendered in doc, in order.
func TrailLabels(doc *goquery.Document) []string {
	var labels []string
	doc.Find("[data-breadcrumbs] [data-breadcrumb-item]").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	return labels
}
