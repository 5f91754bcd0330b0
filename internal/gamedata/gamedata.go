// Package gamedata loads human-authored schema descriptions.
//
// Gamedata files let a schema be pinned by hand (or reviewed in a diff)
// instead of shipped as a binary dump. TOML and JSON carry the same shape:
//
//	[[class]]
//	name = "CBaseEntity"
//	chain_offset = 0x10
//
//	  [[class.member]]
//	  name = "m_iHealth"
//	  offset = 0x34
//	  networked = true
package gamedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/schemakit/pkg/types"
	"github.com/joshuapare/schemakit/schema/index"
)

// File is the document root.
type File struct {
	Classes []Class `toml:"class" json:"classes"`
}

// Class describes one class layout.
type Class struct {
	Name        string   `toml:"name"                   json:"name"`
	ChainOffset *int16   `toml:"chain_offset,omitempty" json:"chain_offset,omitempty"`
	Members     []Member `toml:"member"                 json:"members"`
}

// Member describes one member.
type Member struct {
	Name      string `toml:"name"      json:"name"`
	Offset    int32  `toml:"offset"    json:"offset"`
	Networked bool   `toml:"networked" json:"networked"`
}

// Format selects the document syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("gamedata: unsupported file extension %q", filepath.Ext(path))
	}
}

// Load reads the gamedata file at path into a table.
func Load(path string) (*index.Table, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamedata: %w", err)
	}
	doc, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("gamedata: %s: %w", path, err)
	}
	return doc.Table()
}

// Parse decodes a document.
func Parse(data []byte, f Format) (*File, error) {
	var doc File
	switch f {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, formatErr("parse toml", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, formatErr("parse json", err)
		}
	default:
		return nil, fmt.Errorf("gamedata: unknown format %d", f)
	}
	return &doc, nil
}

// Validate rejects unnamed entries and duplicates, which would otherwise
// silently overwrite each other in the table.
func (doc *File) Validate() error {
	seenClass := make(map[string]bool, len(doc.Classes))
	for i, c := range doc.Classes {
		if c.Name == "" {
			return formatErr(fmt.Sprintf("class %d", i), errors.New("missing name"))
		}
		if seenClass[c.Name] {
			return formatErr("class "+c.Name, errors.New("duplicate class"))
		}
		seenClass[c.Name] = true

		seenMember := make(map[string]bool, len(c.Members))
		for j, m := range c.Members {
			if m.Name == "" {
				return formatErr(fmt.Sprintf("%s member %d", c.Name, j), errors.New("missing name"))
			}
			if seenMember[m.Name] {
				return formatErr(c.Name+"::"+m.Name, errors.New("duplicate member"))
			}
			seenMember[m.Name] = true
		}
	}
	return nil
}

// Table validates the document and builds a schema table from it.
func (doc *File) Table() (*index.Table, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	members := 0
	for _, c := range doc.Classes {
		members += len(c.Members)
	}

	t := index.NewTable(len(doc.Classes), members)
	for _, c := range doc.Classes {
		var chain int16
		if c.ChainOffset != nil {
			chain = *c.ChainOffset
		}
		t.AddClass(c.Name, chain, c.ChainOffset != nil)
		for _, m := range c.Members {
			t.AddMember(c.Name, m.Name, types.SchemaKey{Offset: m.Offset, Networked: m.Networked})
		}
	}
	return t, nil
}

// FromTable converts a table back into a document.
func FromTable(t *index.Table) *File {
	classes := t.Classes()
	doc := &File{Classes: make([]Class, 0, len(classes))}
	for _, ci := range classes {
		c := Class{Name: ci.Name}
		if ci.HasChain {
			chain := ci.ChainOffset
			c.ChainOffset = &chain
		}
		for _, m := range t.Members(ci.Name) {
			c.Members = append(c.Members, Member{Name: m.Member, Offset: m.Key.Offset, Networked: m.Key.Networked})
		}
		doc.Classes = append(doc.Classes, c)
	}
	return doc
}

// Encode writes doc in the given format.
func (doc *File) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("gamedata: unknown format %d", f)
	}
}

func formatErr(msg string, err error) error {
	return &types.Error{Kind: types.ErrKindFormat, Msg: "gamedata: " + msg, Err: err}
}
