package pngyinx

import (
	"errors"
	"fmt"
)

// Validate checks the chunk layout against the PNG structure rules that Parse does
// not enforce: IHDR comes first, IEND occurs exactly once, at least one IDAT is
// present and every chunk type has a valid reserved bit. All problems found are
// returned joined; each wraps ErrValidation.
//
// Files with an embedded secret under a well-formed type pass Validate.
func (p *PNG) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...))
	}

	if len(p.chunks) == 0 {
		add("no chunks")
		return errors.Join(errs...)
	}
	if p.chunks[0].typ != TypeIHDR {
		add("first chunk is %s, want IHDR", p.chunks[0].typ)
	}
	var ends, idats int
	for i := range p.chunks {
		t := p.chunks[i].typ
		switch t {
		case TypeIEND:
			ends++
			if i != len(p.chunks)-1 {
				add("IEND at index %d is not last", i)
			}
			if len(p.chunks[i].data) != 0 {
				add("IEND carries %d data bytes", len(p.chunks[i].data))
			}
		case TypeIHDR:
			if i != 0 {
				add("IHDR at index %d, want 0", i)
			}
		case TypeIDAT:
			idats++
		}
		if !t.IsValid() {
			add("chunk %d type %s has the reserved bit set", i, t)
		}
	}
	if ends == 0 {
		add("no IEND chunk")
	}
	if idats == 0 {
		add("no IDAT chunk")
	}
	return errors.Join(errs...)
}
