package settings

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"
)

func TestMergeSectionRetainsSiblingFields(t *testing.T) {
	current := datatypes.JSONMap{"phone": "A"}
	partial := map[string]interface{}{"email": "b@x.com"}

	merged := MergeSection(current, partial)

	want := datatypes.JSONMap{"phone": "A", "email": "b@x.com"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("MergeSection() = %v, want %v", merged, want)
	}
}

func TestMergeSectionOverwritesUpdatedFields(t *testing.T) {
	current := datatypes.JSONMap{"title": "Old title", "subtitle": "Keep me"}
	partial := map[string]interface{}{"title": "New title"}

	merged := MergeSection(current, partial)

	if merged["title"] != "New title" {
		t.Errorf("title = %v, want %q", merged["title"], "New title")
	}
	if merged["subtitle"] != "Keep me" {
		t.Errorf("subtitle = %v, want %q", merged["subtitle"], "Keep me")
	}
}

func TestMergeSectionSequentialNonOverlappingSaves(t *testing.T) {
	doc := datatypes.JSONMap{"address": "Jl. Pendidikan No. 1"}

	doc = MergeSection(doc, map[string]interface{}{"phone": "555-0100"})
	doc = MergeSection(doc, map[string]interface{}{"email": "info@campus.ac.id"})

	want := datatypes.JSONMap{
		"address": "Jl. Pendidikan No. 1",
		"phone":   "555-0100",
		"email":   "info@campus.ac.id",
	}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("after sequential merges = %v, want %v", doc, want)
	}
}

func TestMergeSectionDoesNotMutateInputs(t *testing.T) {
	current := datatypes.JSONMap{"phone": "A"}
	partial := map[string]interface{}{"phone": "B"}

	MergeSection(current, partial)

	if current["phone"] != "A" {
		t.Errorf("current mutated: phone = %v, want %q", current["phone"], "A")
	}
}

func TestMergeSectionEmptyInputs(t *testing.T) {
	merged := MergeSection(nil, nil)
	if len(merged) != 0 {
		t.Errorf("MergeSection(nil, nil) has %d fields, want 0", len(merged))
	}

	merged = MergeSection(nil, map[string]interface{}{"vision": "v"})
	if merged["vision"] != "v" {
		t.Errorf("vision = %v, want %q", merged["vision"], "v")
	}
}
