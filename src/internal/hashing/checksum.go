package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
	"os"
)

type ChecksumProvider interface {
	GetChecksum() string
}

// ChecksumReaderProxy calculates the MD5 checksum of data as it's read.
type ChecksumReaderProxy struct {
	reader   io.Reader
	checksum hash.Hash
}

func NewMD5ReaderProxy(reader io.Reader) *ChecksumReaderProxy {
	return &ChecksumReaderProxy{
		reader:   reader,
		checksum: md5.New(),
	}
}

func (p *ChecksumReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		// hash.Hash.Write never returns an error
		p.checksum.Write(buf[:n])
	}
	return n, err
}

// GetChecksum returns the MD5 checksum of everything read so far as a hex string.
func (p *ChecksumReaderProxy) GetChecksum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

// ChecksumWriterProxy calculates the MD5 checksum of data as it's written.
// A nil writer discards the data and only hashes it.
type ChecksumWriterProxy struct {
	writer   io.Writer
	checksum hash.Hash
}

func NewMD5WriterProxy(writer io.Writer) *ChecksumWriterProxy {
	if writer == nil {
		writer = io.Discard
	}
	return &ChecksumWriterProxy{
		writer:   writer,
		checksum: md5.New(),
	}
}

func (p *ChecksumWriterProxy) Write(buf []byte) (int, error) {
	n, err := p.writer.Write(buf)
	if n > 0 {
		p.checksum.Write(buf[:n])
	}
	return n, err
}

// GetChecksum returns the MD5 checksum of everything written so far as a hex string.
func (p *ChecksumWriterProxy) GetChecksum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

// FileChecksum returns the MD5 checksum of the file at path.
// ok is false if the file does not exist.
func FileChecksum(path string) (checksum string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()

	proxy := NewMD5ReaderProxy(f)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return "", false, err
	}
	return proxy.GetChecksum(), true, nil
}
