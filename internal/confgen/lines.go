package confgen

import "strings"

// KVBuilder accumulates flat key=value lines.
type KVBuilder struct {
	lines []string
}

func (b *KVBuilder) Line(key, value string) {
	b.lines = append(b.lines, key+"="+value)
}

func (b *KVBuilder) Len() int {
	return len(b.lines)
}

// String joins the lines and terminates the document with a newline.
func (b *KVBuilder) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// BlockBuilder writes global lines followed by one network={...} block.
type BlockBuilder struct {
	global  KVBuilder
	network KVBuilder
	open    bool
}

func (b *BlockBuilder) Global(key, value string) {
	b.global.Line(key, value)
}

// Network adds a line inside the network block, quoting value when asked.
func (b *BlockBuilder) Network(key, value string, quoted bool) {
	b.open = true
	if quoted {
		value = quote(value)
	}
	b.network.Line(key, value)
}

// OpenNetwork forces the block to be written even when it has no lines.
func (b *BlockBuilder) OpenNetwork() {
	b.open = true
}

func (b *BlockBuilder) String() string {
	var sb strings.Builder
	sb.WriteString(b.global.String())
	if !b.open {
		return sb.String()
	}
	sb.WriteString("network={\n")
	sb.WriteString(b.network.String())
	sb.WriteString("}\n")
	return sb.String()
}

func quote(v string) string {
	return `"` + v + `"`
}
