// Package hashing provides MD5 checksum calculation utilities.
//
// It is used to detect that a generated configuration is identical to the file
// already on disk, so the file is left untouched and rsyslog does not see a
// spurious change.
//
//   - ChecksumReaderProxy: calculates MD5 while reading from an io.Reader
//   - ChecksumWriterProxy: calculates MD5 while writing to an io.Writer
//   - FileChecksum: MD5 of a file, reporting a missing file separately
//
// Example:
//
//	proxy := hashing.NewMD5WriterProxy(nil)
//	doc.WriteTo(proxy)
//	existing, ok, err := hashing.FileChecksum("/etc/rsyslog.d/50-remote.conf")
//	if err == nil && ok && existing == proxy.GetChecksum() {
//	    // nothing to do
//	}
package hashing
