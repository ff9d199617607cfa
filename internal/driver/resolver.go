package driver

import (
	"io"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// LinkResolver turns the Link string carried by an assembly.Node into
// the raw bytes of the referenced STEP file. Compose wraps this in its
// own cycle-checking, parsing adapter before handing it to
// merge.BuildAssembly; callers only ever need to supply bytes.
type LinkResolver func(link string) (io.ReadCloser, error)

// FileResolver is the reference LinkResolver: link strings are paths
// resolved relative to root, and the file's contents are exposed
// through a memory mapping rather than a buffered read, mirroring
// saferwall-pe's File.Open.
type FileResolver struct {
	Root string
}

// Resolve implements LinkResolver.
func (r FileResolver) Resolve(link string) (io.ReadCloser, error) {
	path := link
	if !filepath.IsAbs(path) && r.Root != "" {
		path = filepath.Join(r.Root, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening linked file %q", path)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "statting linked file %q", path)
	}
	if fi.Size() == 0 {
		f.Close()
		return io.NopCloser(nilReader{}), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "mmapping linked file %q", path)
	}

	return &mappedFile{data: m, file: f}, nil
}

// mappedFile adapts an mmap.MMap to io.ReadCloser, unmapping and
// closing the backing file descriptor on Close.
type mappedFile struct {
	data   mmap.MMap
	file   *os.File
	offset int
}

func (m *mappedFile) Read(p []byte) (int, error) {
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func (m *mappedFile) Close() error {
	uerr := m.data.Unmap()
	cerr := m.file.Close()
	if uerr != nil {
		return uerr
	}
	return cerr
}

type nilReader struct{}

func (nilReader) Read(p []byte) (int, error) { return 0, io.EOF }
