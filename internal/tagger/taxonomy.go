package tagger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Leaf is one (subject, topic, subtopic) classification target with its
// keyword set.
type Leaf struct {
	Subject  string
	Topic    string
	Subtopic string
	Keywords []string
}

// Taxonomy is the three-level subject/topic/subtopic keyword tree. Leaves
// keep the order they appeared in, which fixes the tie-break: the first
// leaf to reach a given score wins. Immutable once loaded.
type Taxonomy struct {
	leaves []Leaf
}

// Leaves returns the taxonomy's leaves in traversal order.
func (t *Taxonomy) Leaves() []Leaf {
	return t.leaves
}

// Len returns the number of leaves.
func (t *Taxonomy) Len() int {
	return len(t.leaves)
}

// Load reads a taxonomy JSON file: an object of
// subject -> topic -> subtopic -> array of keyword strings.
func Load(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy: %w", err)
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}

// Decode parses taxonomy JSON while preserving object key order, which
// encoding/json's map decoding would discard. Traversal order (and with it
// the scoring tie-break) must match the file.
func Decode(r io.Reader) (*Taxonomy, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	t := &Taxonomy{}
	for dec.More() {
		subject, err := expectString(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			topic, err := expectString(dec)
			if err != nil {
				return nil, err
			}
			if err := expectDelim(dec, '{'); err != nil {
				return nil, err
			}
			for dec.More() {
				subtopic, err := expectString(dec)
				if err != nil {
					return nil, err
				}
				var keywords []string
				if err := dec.Decode(&keywords); err != nil {
					return nil, fmt.Errorf("keywords for %s/%s/%s: %w", subject, topic, subtopic, err)
				}
				t.leaves = append(t.leaves, Leaf{
					Subject:  subject,
					Topic:    topic,
					Subtopic: subtopic,
					Keywords: keywords,
				})
			}
			if err := expectDelim(dec, '}'); err != nil {
				return nil, err
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return t, nil
}

func expectDelim(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	got, ok := tok.(json.Delim)
	if !ok || got != d {
		return fmt.Errorf("expected %q, got %v", d, tok)
	}
	return nil
}

func expectString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string key, got %v", tok)
	}
	return s, nil
}

// DecodeString is a convenience wrapper around Decode.
func DecodeString(s string) (*Taxonomy, error) {
	return Decode(strings.NewReader(s))
}
