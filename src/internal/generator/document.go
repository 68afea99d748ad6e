package generator

import (
	"io"
	"strings"
)

const documentHeader = "# rsyslog configuration generated by logsrv-assist"

// BlockKind identifies the profile section a block was rendered from.
type BlockKind string

const (
	BlockTemplate    BlockKind = "template"
	BlockListener    BlockKind = "listener"
	BlockRuleset     BlockKind = "ruleset"
	BlockTLSListener BlockKind = "tls_listener"
)

// Block is one rendered configuration fragment.
type Block struct {
	Kind BlockKind
	Name string
	Text string
}

// Document is a rendered profile.
type Document struct {
	Blocks []Block
	// Advice holds operator hints for non-default ports, without duplicates.
	Advice []string
}

// String returns the header followed by every block, separated by blank lines.
func (d *Document) String() string {
	var sb strings.Builder

	sb.WriteString(documentHeader)
	sb.WriteString("\n")
	for _, block := range d.Blocks {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(block.Text, "\n"))
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteTo writes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// BlocksOf returns the blocks of the given kind in document order.
func (d *Document) BlocksOf(kind BlockKind) []Block {
	var blocks []Block
	for _, block := range d.Blocks {
		if block.Kind == kind {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
