package pages

import (
	"bytes"
	"net/http"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// buffered delays writing the response body until the component rendered
// without error, so a failed render can still produce a clean error page.
type buffered struct {
	http.ResponseWriter
	buf *bytes.Buffer
}

func newBuffered(w http.ResponseWriter) buffered {
	return buffered{ResponseWriter: w, buf: bufferPool.Get().(*bytes.Buffer)}
}

func (w buffered) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

// close flushes the buffered body to the underlying writer.
func (w buffered) close() error {
	_, err := w.ResponseWriter.Write(w.buf.Bytes())
	w.release()
	return err
}

// discard drops the buffered body without writing it.
func (w buffered) discard() {
	w.release()
}

func (w buffered) release() {
	w.buf.Reset()
	bufferPool.Put(w.buf)
}
