package codegen

import (
	"strings"
)

// regionBuffer accumulates emitted text per region. Only regions that
// were actually emitted to get an entry; serialization skips the rest.
type regionBuffer struct {
	sections map[Region]*strings.Builder
}

func newRegionBuffer() *regionBuffer {
	return &regionBuffer{sections: make(map[Region]*strings.Builder)}
}

// append adds text to a region, initializing the section on first use.
func (b *regionBuffer) append(r Region, text string) {
	sb, ok := b.sections[r]
	if !ok {
		sb = &strings.Builder{}
		b.sections[r] = sb
	}

	sb.WriteString(text)
}

// serialize concatenates all populated sections in canonical order, each
// preceded by a banner comment naming the region. Regions that were
// never emitted to are skipped.
func (b *regionBuffer) serialize() string {
	var out strings.Builder

	for _, r := range regionOrder {
		sb, ok := b.sections[r]
		if !ok {
			continue
		}

		out.WriteString("// region ")
		out.WriteString(r.String())
		out.WriteString("\n")
		out.WriteString(sb.String())
	}

	return out.String()
}
