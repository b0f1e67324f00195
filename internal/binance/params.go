package binance

import (
	"net/url"
	"strings"
)

const signatureKey = "signature"

// Params is an ordered set of request parameters. Binance recomputes the
// request signature over the exact query string it receives, so encoding
// must preserve insertion order; url.Values would sort keys and break the
// signature.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

func NewParams() *Params {
	return &Params{}
}

// Set adds a parameter, replacing the value in place if the key already
// exists so the original position is kept.
func (p *Params) Set(key, value string) {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return
		}
	}
	p.pairs = append(p.pairs, pair{key: key, value: value})
}

func (p *Params) Get(key string) string {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value
		}
	}
	return ""
}

func (p *Params) Len() int {
	return len(p.pairs)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.pairs))
	for _, kv := range p.pairs {
		keys = append(keys, kv.key)
	}
	return keys
}

func (p *Params) Clone() *Params {
	clone := &Params{pairs: make([]pair, len(p.pairs))}
	copy(clone.pairs, p.pairs)
	return clone
}

// Encode renders the canonical query string: percent-encoded key=value
// pairs joined with "&" in insertion order. This exact string is both
// signed and transmitted.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// Redacted renders the parameters for logging. The signature is never
// included, whatever the parameter set looks like.
func (p *Params) Redacted() string {
	var b strings.Builder
	for _, kv := range p.pairs {
		if kv.key == signatureKey {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(kv.value)
	}
	return b.String()
}
