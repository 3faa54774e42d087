package vtscreen

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// ErrorPolicy governs what a Decoder does when a Fallback's encoding fails
// to decode the next byte(s).
type ErrorPolicy int

const (
	// PolicyReplace emits utf8.RuneError and consumes the offending byte.
	PolicyReplace ErrorPolicy = iota
	// PolicySkip drops the offending byte silently, emitting nothing.
	PolicySkip
	// PolicyFallback retries the same byte against the next Fallback in
	// the chain. The last entry in a chain may not use PolicyFallback; the
	// constructor coerces it to PolicyReplace.
	PolicyFallback
)

// Fallback is one (encoding, error-policy) pair in a Decoder's chain.
type Fallback struct {
	Encoding encoding.Encoding
	Policy   ErrorPolicy
}

// Decoder converts bytes into runes fed to a Stream, trying an ordered list
// of (encoding, error-policy) fallbacks and applying each Fallback's
// policy on decode failure.
type Decoder struct {
	chain []Fallback
}

// NewDecoder builds a Decoder from chain. An empty chain defaults to a
// single UTF-8/PolicyReplace entry, matching the reference implementation's
// default incremental UTF-8 decoder with the "replace" error handler.
func NewDecoder(chain ...Fallback) *Decoder {
	if len(chain) == 0 {
		chain = []Fallback{{Encoding: unicode.UTF8, Policy: PolicyReplace}}
	}
	chain = append([]Fallback(nil), chain...)
	if chain[len(chain)-1].Policy == PolicyFallback {
		chain[len(chain)-1].Policy = PolicyReplace
	}
	return &Decoder{chain: chain}
}

// Feed decodes data and forwards every resulting rune to stream.Feed, in
// order.
func (d *Decoder) Feed(data []byte, stream *Stream) {
	for len(data) > 0 {
		r, size := d.decodeOne(data)
		if r != utf8.RuneError || size > 0 {
			if r >= 0 {
				stream.Feed(r)
			}
		}
		if size <= 0 {
			size = 1
		}
		data = data[size:]
	}
}

// decodeOne decodes the rune at the start of data using the fallback
// chain. It returns r == -1 to mean "no rune produced" (a skipped byte).
func (d *Decoder) decodeOne(data []byte) (r rune, size int) {
	for _, fb := range d.chain {
		decoded, n, ok := decodeWith(fb.Encoding, data)
		if ok {
			return decoded, n
		}
		switch fb.Policy {
		case PolicySkip:
			return -1, 1
		case PolicyReplace:
			return utf8.RuneError, 1
		case PolicyFallback:
			continue
		}
	}
	return utf8.RuneError, 1
}

// decodeWith attempts to decode one rune from data using enc. UTF-8 is
// special-cased onto the standard library's decoder since it is the
// overwhelmingly common case and x/text's UTF8 encoding is a pass-through
// validator rather than a decoder to runes.
func decodeWith(enc encoding.Encoding, data []byte) (r rune, size int, ok bool) {
	if enc == unicode.UTF8 || enc == nil {
		r, size = utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			return 0, 0, false
		}
		return r, size, true
	}

	// Decode growing prefixes of data until one yields exactly one rune, so
	// the returned size covers that rune's bytes and nothing after them.
	dst := make([]byte, utf8.UTFMax)
	for n := 1; n <= len(data) && n <= utf8.UTFMax; n++ {
		nDst, nSrc, err := enc.NewDecoder().Transform(dst, data[:n], true)
		if err != nil || nSrc != n || nDst == 0 {
			continue
		}
		r, size = utf8.DecodeRune(dst[:nDst])
		if r == utf8.RuneError || size != nDst {
			continue
		}
		return r, n, true
	}
	return 0, 0, false
}
