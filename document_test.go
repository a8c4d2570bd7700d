package pdfdoc

import (
	"errors"
	"testing"
)

func TestAddParagraphWithoutSection(t *testing.T) {
	d := New()
	_, err := d.AddParagraph(Style{})
	if err == nil {
		t.Fatal("AddParagraph on empty document succeeded")
	}
	var se *StructureError
	if !errors.As(err, &se) {
		t.Fatalf("error is %T, want *StructureError", err)
	}
	if !errors.Is(err, ErrNoSection) {
		t.Errorf("error = %v, want ErrNoSection", err)
	}
}

func TestAddRunWithoutParagraph(t *testing.T) {
	d := New()
	if _, err := d.AddRun("x", Style{}); !errors.Is(err, ErrNoSection) {
		t.Errorf("AddRun on empty document: %v, want ErrNoSection", err)
	}
	d.AddSection()
	if _, err := d.AddRun("x", Style{}); !errors.Is(err, ErrNoParagraph) {
		t.Errorf("AddRun on empty section: %v, want ErrNoParagraph", err)
	}
}

func TestAddRunRejectsEmptyText(t *testing.T) {
	d := New()
	d.AddSection()
	if _, err := d.AddParagraph(Style{}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddRun("", Style{}); !errors.Is(err, ErrEmptyRun) {
		t.Errorf("AddRun(\"\") = %v, want ErrEmptyRun", err)
	}
}

func TestTraversalPreservesOrder(t *testing.T) {
	d := New()
	d.AddSection()
	d.AddParagraph(Style{})
	texts := []string{"one", "two", "three"}
	for _, s := range texts {
		if _, err := d.AddRun(s, Style{}); err != nil {
			t.Fatal(err)
		}
	}
	d.AddParagraph(Style{})
	d.AddRun("four", Style{})
	d.AddSection()
	d.AddParagraph(Style{})
	d.AddRun("five", Style{})

	var got []string
	for _, sec := range d.Sections() {
		for _, par := range sec.Paragraphs() {
			for _, run := range par.Runs() {
				got = append(got, run.Text)
			}
		}
	}
	want := []string{"one", "two", "three", "four", "five"}
	if len(got) != len(want) {
		t.Fatalf("read back %d runs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(d.Sections()) != 2 {
		t.Errorf("section count = %d, want 2", len(d.Sections()))
	}
}

func TestDocumentEqual(t *testing.T) {
	build := func() *Document {
		return NewBuilder(nil).
			AddParagraph(Style{}.WithAlign(AlignLeft)).
			AddRun("Hello ", Style{}.WithWeight(WeightBold)).
			AddText("World").
			Document()
	}
	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("identically built documents compare unequal")
	}

	c := build()
	c.Sections()[0].Paragraphs()[0].Runs()[1].Text = "world"
	if a.Equal(c) {
		t.Error("documents with different run text compare equal")
	}

	d := build()
	d.Title = "titled"
	if a.Equal(d) {
		t.Error("documents with different metadata compare equal")
	}
}
