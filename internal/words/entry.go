// Package words loads the practice word dataset and serves random draws from it.
package words

import "slices"

// Entry is one practice unit: a word with its aligned zhuyin symbols and the
// keyboard keys that produce them. An empty symbol marks the unmarked first tone.
type Entry struct {
	Word   string   `json:"word"`
	Zhuyin []string `json:"zhuyin"`
	Keys   []string `json:"keys"`
}

// Aligned reports whether the entry has one key sequence per zhuyin symbol.
func (e Entry) Aligned() bool {
	return len(e.Zhuyin) == len(e.Keys)
}

func (e Entry) clone() Entry {
	return Entry{Word: e.Word, Zhuyin: slices.Clone(e.Zhuyin), Keys: slices.Clone(e.Keys)}
}

// Violation describes an entry whose symbol and key counts differ.
type Violation struct {
	Index   int    `json:"index"`
	Word    string `json:"word"`
	Symbols int    `json:"symbols"`
	Keys    int    `json:"keys"`
}

// Dataset is an immutable, ordered collection of entries.
type Dataset struct {
	entries []Entry
}

// NewDataset copies entries into a new Dataset. A nil or empty slice yields an empty Dataset.
func NewDataset(entries []Entry) *Dataset {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Dataset{entries: cp}
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// At returns a copy of the entry at index i. It panics if i is out of range.
func (d *Dataset) At(i int) Entry {
	return d.entries[i].clone()
}

// Entries returns a copy of the entries in source order.
func (d *Dataset) Entries() []Entry {
	if d == nil {
		return nil
	}
	cp := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		cp[i] = e.clone()
	}
	return cp
}

// Violations lists every entry that breaks the one-key-per-symbol alignment.
func (d *Dataset) Violations() []Violation {
	if d == nil {
		return nil
	}
	var out []Violation
	for i, e := range d.entries {
		if !e.Aligned() {
			out = append(out, Violation{
				Index:   i,
				Word:    e.Word,
				Symbols: len(e.Zhuyin),
				Keys:    len(e.Keys),
			})
		}
	}
	return out
}
