// Package config reads and provisions the toolchain's TOML config document.
package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"go.trai.ch/omegaup/internal/core/domain"
	"go.trai.ch/zerr"
)

// Header is written above every generated config document.
const Header = "# OMEGA Language Configuration\n"

// Encode renders doc as a TOML document with a leading header comment.
func Encode(doc domain.ConfigDocument) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Header)

	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigEncodeFailed.Error())
	}
	return buf.Bytes(), nil
}

// Decode parses a TOML config document. Keys absent from data keep their zero value.
func Decode(data []byte) (*domain.ConfigDocument, error) {
	var doc domain.ConfigDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return &doc, zerr.With(domain.ErrConfigParseFailed, "unknown_keys", keys)
	}
	return &doc, nil
}
