package store

import (
	"testing"

	"github.com/everhold/everhold/models"
)

func strPtr(s string) *string { return &s }

func TestNullIfEmpty(t *testing.T) {
	if got := nullIfEmpty(nil); got != nil {
		t.Errorf("expected nil for nil pointer, got %v", got)
	}
	if got := nullIfEmpty(strPtr("")); got != nil {
		t.Errorf("expected nil for pointer to empty string, got %v", got)
	}
	if got := nullIfEmpty(strPtr("kind")); got != "kind" {
		t.Errorf("expected 'kind', got %v", got)
	}
}

func TestBuildSingletonUpdate_PartialPatch(t *testing.T) {
	patch := models.GeneralKnowledgePatch{
		Personality: strPtr("warm and generous"),
		Beliefs:     strPtr(""),
	}

	query, args, err := buildSingletonUpdate("general_knowledge", "page-1", generalKnowledgeColumns(patch))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `UPDATE general_knowledge SET personality = $1, beliefs = $2 WHERE page_id = $3`
	if query != want {
		t.Errorf("expected query %q, got %q", want, query)
	}

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
	if args[0] != "warm and generous" {
		t.Errorf("expected personality arg, got %v", args[0])
	}
	// pointer to "" clears the column
	if args[1] != nil {
		t.Errorf("expected nil (clear to NULL) for beliefs, got %v", args[1])
	}
	if args[2] != "page-1" {
		t.Errorf("expected page_id arg, got %v", args[2])
	}
}

func TestBuildSingletonUpdate_OmitsAbsentFields(t *testing.T) {
	patch := models.MemorialDetailsPatch{Obituary: strPtr("a full life")}

	query, args, err := buildSingletonUpdate("memorial_details", "page-1", memorialDetailsColumns(patch))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `UPDATE memorial_details SET obituary = $1 WHERE page_id = $2`
	if query != want {
		t.Errorf("expected query %q, got %q", want, query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestBuildSingletonInsert(t *testing.T) {
	patch := models.GeneralKnowledgePatch{
		Personality: strPtr("kind"),
		Values:      strPtr("honesty"),
	}

	query, args, err := buildSingletonInsert("general_knowledge", "knowledge_id", "gk-1", "page-1", generalKnowledgeColumns(patch))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `INSERT INTO general_knowledge (knowledge_id,page_id,personality,"values") VALUES ($1,$2,$3,$4)`
	if query != want {
		t.Errorf("expected query %q, got %q", want, query)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	if args[0] != "gk-1" || args[1] != "page-1" || args[2] != "kind" || args[3] != "honesty" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSingletonInsert_EmptyPatch(t *testing.T) {
	query, args, err := buildSingletonInsert("memorial_details", "details_id", "md-1", "page-1",
		memorialDetailsColumns(models.MemorialDetailsPatch{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `INSERT INTO memorial_details (details_id,page_id) VALUES ($1,$2)`
	if query != want {
		t.Errorf("expected query %q, got %q", want, query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}
