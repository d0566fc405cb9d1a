package tagger

import "testing"

func TestDecodePreservesOrder(t *testing.T) {
	tax, err := DecodeString(`{
		"Zoology": {
			"Mammals": {
				"Primates": ["ape", "lemur"],
				"Rodents": ["rat"]
			}
		},
		"Anatomy": {
			"Bones": {"Long Bones": ["femur"]}
		}
	}`)
	if err != nil {
		t.Fatal(err)
	}
	leaves := tax.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("leaves = %d, want 3", len(leaves))
	}
	wantOrder := []string{"Primates", "Rodents", "Long Bones"}
	for i, sub := range wantOrder {
		if leaves[i].Subtopic != sub {
			t.Errorf("leaf %d = %q, want %q (file order must be preserved)", i, leaves[i].Subtopic, sub)
		}
	}
	if leaves[0].Subject != "Zoology" || leaves[2].Subject != "Anatomy" {
		t.Errorf("subjects out of order: %+v", leaves)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		`["not", "an", "object"]`,
		`{"Subject": ["wrong level"]}`,
		`{"Subject": {"Topic": {"Sub": "not an array"}}}`,
	} {
		if _, err := DecodeString(raw); err == nil {
			t.Errorf("expected decode error for %s", raw)
		}
	}
}

func TestDefaultTaxonomyShockLeafFirst(t *testing.T) {
	leaves := DefaultTaxonomy().Leaves()
	if len(leaves) == 0 || leaves[0].Subtopic != "Shock" {
		t.Fatalf("default taxonomy must start with the Shock leaf, got %+v", leaves[0])
	}
}
