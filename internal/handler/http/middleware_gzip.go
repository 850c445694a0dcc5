package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/agent-chat/internal/app"
	"github.com/MKhiriev/agent-chat/internal/utils"
)

const encodingGzip = "gzip"

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasEncoding(r.Header.Get("Content-Encoding")) && r.Body != nil {
			if err := inflateBody(r); err != nil {
				utils.WriteDetail(w, app.MsgInvalidGzipData, http.StatusBadRequest)
				return
			}
		}

		if !hasEncoding(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		cw := newCompressingWriter(w)
		defer cw.release()

		next.ServeHTTP(cw, r)
	})
}

func hasEncoding(header string) bool {
	return strings.Contains(header, encodingGzip)
}

// inflateBody swaps the request body for a pooled gzip reader.
func inflateBody(r *http.Request) error {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzipReaders.Put(zr)
		return err
	}

	r.Body = &inflatedBody{Reader: zr, source: r.Body, zr: zr}
	r.Header.Del("Content-Encoding")
	r.ContentLength = -1
	return nil
}

type inflatedBody struct {
	io.Reader
	source io.Closer
	zr     *gzip.Reader
	closed bool
}

func (b *inflatedBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.zr.Close()
	gzipReaders.Put(b.zr)
	return b.source.Close()
}

// compressingWriter gzips everything written through it. Content-Encoding is
// only announced once the handler starts the response.
type compressingWriter struct {
	http.ResponseWriter
	zw      *gzip.Writer
	started bool
}

func newCompressingWriter(w http.ResponseWriter) *compressingWriter {
	zw := gzipWriters.Get().(*gzip.Writer)
	zw.Reset(w)
	return &compressingWriter{ResponseWriter: w, zw: zw}
}

func (c *compressingWriter) WriteHeader(status int) {
	if c.started {
		return
	}
	c.started = true
	h := c.Header()
	h.Set("Content-Encoding", encodingGzip)
	h.Del("Content-Length")
	c.ResponseWriter.WriteHeader(status)
}

func (c *compressingWriter) Write(p []byte) (int, error) {
	if !c.started {
		c.WriteHeader(http.StatusOK)
	}
	return c.zw.Write(p)
}

// release flushes the gzip trailer when a response was started and returns
// the writer to the pool.
func (c *compressingWriter) release() {
	if c.started {
		c.zw.Close()
	}
	c.zw.Reset(io.Discard)
	gzipWriters.Put(c.zw)
}
