package docjson

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	pdfdoc "github.com/rana/pdf-doc"
)

func buildTestDocument() *pdfdoc.Document {
	doc := pdfdoc.New(
		pdfdoc.WithPageSize(pdfdoc.PageSizeA4),
		pdfdoc.WithMargin(pdfdoc.UniformMargin(pdfdoc.Inches(0.75))),
		pdfdoc.WithMetadata("Round Trip", "docjson", "testing"),
	)
	b := pdfdoc.NewBuilder(doc)
	b.AddParagraph(pdfdoc.Style{}.WithAlign(pdfdoc.AlignCenter).WithSpacingAfter(12)).
		AddRun("Title line", pdfdoc.Style{}.WithSize(18).WithWeight(pdfdoc.WeightBold))
	b.AddParagraph(pdfdoc.Style{}.WithLineHeight(1.5).WithIndent(pdfdoc.Inches(0.5))).
		AddText("Body text with ").
		AddRun("an italic stretch", pdfdoc.Style{}.WithItalic(true)).
		AddText(" and a ").
		AddRun("red word", pdfdoc.Style{}.WithColor(pdfdoc.Color{R: 200, G: 0, B: 0}))
	b.AddSection().
		SectionPageSize(pdfdoc.PageSizeA5).
		SectionMargin(pdfdoc.UniformMargin(36)).
		AddParagraph(pdfdoc.Style{}.WithAlign(pdfdoc.AlignRight)).
		AddText("Second section")
	return b.Document()
}

func TestRoundTrip(t *testing.T) {
	d := buildTestDocument()
	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(d) {
		t.Errorf("decoded document differs from original\nencoded:\n%s", data)
	}
}

// The two-run justify scenario: encode, decode, re-encode, and check both
// JSON outputs decode to equal documents.
func TestReEncodeStability(t *testing.T) {
	d := pdfdoc.NewBuilder(nil).
		AddParagraph(pdfdoc.Style{}.WithAlign(pdfdoc.AlignJustify)).
		AddRun("Hello ", pdfdoc.Style{}.WithWeight(pdfdoc.WeightBold)).
		AddRun("World", pdfdoc.Style{}.WithWeight(pdfdoc.WeightNormal)).
		Document()

	first, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(first)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	second, err := Encode(decoded)
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}
	a, err := Decode(first)
	if err != nil {
		t.Fatalf("Decode(first): %v", err)
	}
	b, err := Decode(second)
	if err != nil {
		t.Fatalf("Decode(second): %v", err)
	}
	if !a.Equal(b) {
		t.Error("first and second encodings decode to different documents")
	}
	if !a.Equal(d) {
		t.Error("decoded document differs from original")
	}
}

func TestEncodeOmitsUnsetStyleFields(t *testing.T) {
	d := pdfdoc.NewBuilder(nil).
		AddParagraph(pdfdoc.Style{}).
		AddText("plain").
		AddRun("bold", pdfdoc.Style{}.WithWeight(pdfdoc.WeightBold)).
		Document()
	data, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var raw struct {
		Sections []struct {
			Paragraphs []struct {
				Style map[string]any `json:"style"`
				Runs  []map[string]any
			}
		}
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("re-reading encoded JSON: %v", err)
	}
	par := raw.Sections[0].Paragraphs[0]
	if par.Style != nil {
		t.Errorf("unstyled paragraph has a style key: %v", par.Style)
	}
	if _, ok := par.Runs[0]["style"]; ok {
		t.Error("unstyled run has a style key")
	}
	st, ok := par.Runs[1]["style"].(map[string]any)
	if !ok {
		t.Fatal("styled run has no style object")
	}
	if len(st) != 1 || st["weight"] != "bold" {
		t.Errorf("styled run emits more than its explicit fields: %v", st)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	in := `{
		"version": 3,
		"sections": [{
			"watermark": "draft",
			"paragraphs": [{
				"runs": [{"text": "hi", "highlight": true}]
			}]
		}]
	}`
	d, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	runs := d.Sections()[0].Paragraphs()[0].Runs()
	if len(runs) != 1 || runs[0].Text != "hi" {
		t.Errorf("decoded runs = %+v", runs)
	}
}

func TestDecodeMissingSections(t *testing.T) {
	_, err := Decode([]byte(`{"title": "no body"}`))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
	if !strings.Contains(pe.Path, "sections") {
		t.Errorf("error path = %q, want it to name sections", pe.Path)
	}
}

func TestDecodeRunTextErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"absent", `{"sections":[{"paragraphs":[{"runs":[{"style":{}}]}]}]}`},
		{"not a string", `{"sections":[{"paragraphs":[{"runs":[{"text": 42}]}]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v (%T), want *ParseError", err, err)
			}
		})
	}
}

func TestDecodeEmptyRunText(t *testing.T) {
	in := `{"sections":[{"paragraphs":[{"runs":[{"text": ""}]}]}]}`
	_, err := Decode([]byte(in))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v (%T), want *ValidationError", err, err)
	}
}

func TestDecodeValidation(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"color out of range", `{"sections":[{"paragraphs":[{"runs":[{"text":"x","style":{"color":[0,0,256]}}]}]}]}`},
		{"negative color", `{"sections":[{"paragraphs":[{"style":{"color":[-1,0,0]},"runs":[]}]}]}`},
		{"unknown weight", `{"sections":[{"paragraphs":[{"runs":[{"text":"x","style":{"weight":"heavy"}}]}]}]}`},
		{"unknown alignment", `{"style":{"align":"middle"},"sections":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v (%T), want *ValidationError", err, err)
			}
		})
	}
}

func TestDecodeColorWrongShape(t *testing.T) {
	in := `{"sections":[{"paragraphs":[{"runs":[{"text":"x","style":{"color":[0,0]}}]}]}]}`
	_, err := Decode([]byte(in))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
}

func TestDecodePartialDocumentStyleStaysComplete(t *testing.T) {
	in := `{"style":{"size": 10}, "sections":[]}`
	d, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Style.Size == nil || *d.Style.Size != 10 {
		t.Errorf("document size = %v, want explicit 10", d.Style.Size)
	}
	if d.Style.Family == nil || d.Style.Align == nil || d.Style.LineHeight == nil {
		t.Error("document style lost its fully-populated invariant")
	}
}
