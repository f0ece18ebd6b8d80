package docview

import (
	"reflect"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParse_TitleExtractedAndRemoved(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><body><h1>Housing Policy</h1><p>text</p></body></html>`)

	if doc.Title != "Housing Policy" {
		t.Errorf("title = %q, want %q", doc.Title, "Housing Policy")
	}
	if strings.Contains(doc.Body, "<h1") {
		t.Errorf("title heading left in body: %s", doc.Body)
	}
	if !strings.Contains(doc.Body, "<p>text</p>") {
		t.Errorf("body content lost: %s", doc.Body)
	}
}

func TestParse_TitleNestedTagsStripped(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<h1>Annual <em>Budget</em> Review</h1>`)
	if doc.Title != "Annual Budget Review" {
		t.Errorf("title = %q, want nested tags stripped", doc.Title)
	}
}

func TestParse_TitleEntitiesDecoded(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<h1>Mayor&#39;s Q&amp;A &lt;draft&gt;</h1>`)
	if doc.Title != `Mayor's Q&A <draft>` {
		t.Errorf("title = %q, want entities decoded", doc.Title)
	}
}

func TestParse_InjectsSectionIDs(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<h1>Doc</h1><h2>Part One</h2><p>a</p><h3>Fine Print</h3>`)

	if !strings.Contains(doc.Body, `<h2 id="part-one">`) {
		t.Errorf("h2 missing injected id: %s", doc.Body)
	}
	if !strings.Contains(doc.Body, `<h3 id="fine-print">`) {
		t.Errorf("h3 missing injected id: %s", doc.Body)
	}

	want := []TOCEntry{
		{ID: "part-one", Text: "Part One", Level: 2},
		{ID: "fine-print", Text: "Fine Print", Level: 3},
	}
	if !reflect.DeepEqual(doc.TOC, want) {
		t.Errorf("TOC = %+v, want %+v", doc.TOC, want)
	}
}

func TestParse_ExistingIDUntouched(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<h2 id="custom-anchor">Part One</h2>`)

	if !strings.Contains(doc.Body, `id="custom-anchor"`) {
		t.Errorf("existing id altered: %s", doc.Body)
	}
	if strings.Contains(doc.Body, `part-one`) {
		t.Errorf("computed id injected over existing one: %s", doc.Body)
	}
	if len(doc.TOC) != 1 || doc.TOC[0].ID != "custom-anchor" {
		t.Errorf("TOC should use the existing id: %+v", doc.TOC)
	}
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	first := mustParse(t, `<h2>Part One</h2><p>body &amp; text</p><h3>Notes</h3>`)
	second := mustParse(t, first.Body)

	if first.Body != second.Body {
		t.Errorf("second pass altered body:\n first: %s\nsecond: %s", first.Body, second.Body)
	}
	if !reflect.DeepEqual(first.TOC, second.TOC) {
		t.Errorf("second pass altered TOC: %+v vs %+v", first.TOC, second.TOC)
	}
}

func TestParse_DuplicateHeadingsCollide(t *testing.T) {
	t.Parallel()

	// Two identical headings produce the identical anchor; both TOC entries
	// point at the first occurrence. Known limitation, asserted as-is.
	doc := mustParse(t, `<h1>Intro</h1><h2>Part One</h2><p>text</p><h2>Part One</h2>`)

	if doc.Title != "Intro" {
		t.Errorf("title = %q", doc.Title)
	}
	if got := strings.Count(doc.Body, `id="part-one"`); got != 2 {
		t.Errorf("duplicate headings should both carry the slug, got %d occurrences in %s", got, doc.Body)
	}
	if len(doc.TOC) != 2 || doc.TOC[0].ID != doc.TOC[1].ID {
		t.Errorf("TOC entries should share the colliding id: %+v", doc.TOC)
	}
}

func TestParse_NoTitleHeading(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<h2>Only Section</h2>`)
	if doc.Title != "" {
		t.Errorf("title = %q, want empty", doc.Title)
	}
	if len(doc.TOC) != 1 {
		t.Errorf("TOC = %+v", doc.TOC)
	}
}

func TestParse_TOCAnchorsMatchBodyIDs(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<h1>T</h1><h2>Budget &amp; Finance</h2><h3 id="kept">Kept</h3><h2>Roads</h2>`)
	for _, entry := range doc.TOC {
		if !strings.Contains(doc.Body, `id="`+entry.ID+`"`) {
			t.Errorf("TOC anchor %q has no matching id in body: %s", entry.ID, doc.Body)
		}
	}
}
