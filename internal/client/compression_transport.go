package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// decompressionTransport wraps an http.RoundTripper to advertise browser-like
// Accept-Encoding and transparently decode gzip, brotli and zstd responses
type decompressionTransport struct {
	base http.RoundTripper
}

// newDecompressionTransport creates a transport with automatic response decompression
func newDecompressionTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &decompressionTransport{base: base}
}

// RoundTrip executes a single HTTP transaction, adding the Accept-Encoding
// header and decompressing the response body when needed
func (t *decompressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "gzip, br, zstd")
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Nothing to decode for HEAD, 204 and 304 responses
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	var reader io.ReadCloser
	switch lastEncoding(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		reader = gz
	case "br":
		reader = io.NopCloser(brotli.NewReader(resp.Body))
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		reader = zr.IOReadCloser()
	default:
		// Identity or unknown encoding, return response as-is
		return resp, nil
	}

	resp.Body = &decodedBody{reader: reader, original: resp.Body}

	// The encoding headers no longer describe the body
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1

	return resp, nil
}

// decodedBody closes both the decoder and the underlying response body
type decodedBody struct {
	reader   io.ReadCloser
	original io.ReadCloser
}

func (d *decodedBody) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

func (d *decodedBody) Close() error {
	readerErr := d.reader.Close()
	bodyErr := d.original.Close()
	if readerErr != nil {
		return readerErr
	}
	return bodyErr
}

// lastEncoding returns the outermost (last-applied) encoding from a
// Content-Encoding header, lowercased. Empty input yields an empty string.
func lastEncoding(header string) string {
	parts := strings.Split(header, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}
