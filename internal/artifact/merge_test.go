package artifact

import (
	"errors"
	"testing"
)

func TestMergeGroup(t *testing.T) {
	t.Run("keep existing inserts only absent keys", func(t *testing.T) {
		doc := map[string]any{
			"dependencies": map[string]any{"react": "^18.0.0"},
		}
		fragment := map[string]any{"react": "^19.0.0", "zod": "^3.24.1"}

		if err := MergeGroup(doc, fragment, KeepExisting, "dependencies"); err != nil {
			t.Fatalf("MergeGroup() error: %v", err)
		}

		deps := doc["dependencies"].(map[string]any)
		if deps["react"] != "^18.0.0" {
			t.Errorf("react = %v, want existing ^18.0.0 kept", deps["react"])
		}
		if deps["zod"] != "^3.24.1" {
			t.Errorf("zod = %v, want ^3.24.1 added", deps["zod"])
		}
	})

	t.Run("overwrite replaces colliding keys", func(t *testing.T) {
		doc := map[string]any{
			"chat": map[string]any{"send": "Send", "old": "gone"},
			"nav":  map[string]any{"home": "Home"},
		}
		fragment := map[string]any{
			"chat": map[string]any{"send": "Submit"},
		}

		if err := MergeGroup(doc, fragment, Overwrite); err != nil {
			t.Fatalf("MergeGroup() error: %v", err)
		}

		chat := doc["chat"].(map[string]any)
		if chat["send"] != "Submit" {
			t.Errorf("chat.send = %v, want fragment value Submit", chat["send"])
		}
		if _, ok := chat["old"]; ok {
			t.Error("chat.old survived, want namespace replaced wholesale")
		}
		nav := doc["nav"].(map[string]any)
		if nav["home"] != "Home" {
			t.Errorf("nav.home = %v, want untouched namespace preserved", nav["home"])
		}
	})

	t.Run("idempotent under both strategies", func(t *testing.T) {
		for _, strat := range []Strategy{KeepExisting, Overwrite} {
			doc := map[string]any{"g": map[string]any{"a": "1"}}
			fragment := map[string]any{"a": "2", "b": "3"}

			if err := MergeGroup(doc, fragment, strat, "g"); err != nil {
				t.Fatalf("%v first merge error: %v", strat, err)
			}
			once, err := EncodeJSON(doc)
			if err != nil {
				t.Fatalf("EncodeJSON() error: %v", err)
			}

			if err := MergeGroup(doc, fragment, strat, "g"); err != nil {
				t.Fatalf("%v second merge error: %v", strat, err)
			}
			twice, err := EncodeJSON(doc)
			if err != nil {
				t.Fatalf("EncodeJSON() error: %v", err)
			}

			if string(once) != string(twice) {
				t.Errorf("%v: second merge changed document\nonce:\n%s\ntwice:\n%s", strat, once, twice)
			}
		}
	})

	t.Run("missing group fails", func(t *testing.T) {
		doc := map[string]any{"dependencies": map[string]any{}}
		err := MergeGroup(doc, map[string]any{"a": "1"}, KeepExisting, "devDependencies")

		var mge *MissingGroupError
		if !errors.As(err, &mge) {
			t.Fatalf("error = %v, want *MissingGroupError", err)
		}
		if mge.Path != "devDependencies" {
			t.Errorf("Path = %q, want devDependencies", mge.Path)
		}
	})

	t.Run("non-object segment fails with full path", func(t *testing.T) {
		doc := map[string]any{"a": map[string]any{"b": "not an object"}}
		err := MergeGroup(doc, map[string]any{}, Overwrite, "a", "b")

		var mge *MissingGroupError
		if !errors.As(err, &mge) {
			t.Fatalf("error = %v, want *MissingGroupError", err)
		}
		if mge.Path != "a.b" {
			t.Errorf("Path = %q, want a.b", mge.Path)
		}
	})
}

func TestEncodeJSONDeterministic(t *testing.T) {
	doc := map[string]any{"b": 1, "a": 2, "c": map[string]any{"z": 1, "y": 2}}

	first, err := EncodeJSON(doc)
	if err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := EncodeJSON(doc)
		if err != nil {
			t.Fatalf("EncodeJSON() error: %v", err)
		}
		if string(next) != string(first) {
			t.Fatalf("encoding not deterministic:\n%s\nvs\n%s", first, next)
		}
	}

	if first[len(first)-1] != '\n' {
		t.Error("encoded output missing trailing newline")
	}
}

func TestDecodeJSONRejectsNonObject(t *testing.T) {
	if _, err := DecodeJSON([]byte(`["not", "an", "object"]`)); err == nil {
		t.Error("DecodeJSON() accepted a JSON array, want error")
	}
}
