// Package docjson persists document trees as JSON and reads them back.
//
// The format is a nested object tree keyed "sections", "paragraphs" and
// "runs". Style objects are partial: a field appears only when it was
// explicitly set at that level, and omission means "inherit from the
// enclosing level". Colors are three 0-255 integers, enums are fixed
// lowercase tokens ("left", "bold", ...). Decoding ignores unknown keys
// for forward compatibility, and Decode(Encode(d)) yields a document
// equal to d for every valid d.
//
// Example document:
//
//	{
//	  "pageSize": {"width": 612, "height": 792},
//	  "margin": {"top": 72, "right": 72, "bottom": 72, "left": 72},
//	  "style": {"family": "Times", "size": 12, "align": "justify", ...},
//	  "sections": [{
//	    "paragraphs": [{
//	      "style": {"align": "center"},
//	      "runs": [{"text": "Hello ", "style": {"weight": "bold"}},
//	               {"text": "World"}]
//	    }]
//	  }]
//	}
package docjson

import (
	"encoding/json"
	"fmt"

	pdfdoc "github.com/rana/pdf-doc"
)

// Wire representation. Pointer fields distinguish "absent" from "present
// with the zero value"; omitempty keeps unset style fields out of the
// output so omission can signal inheritance.
type jsonDocument struct {
	Title    string         `json:"title,omitempty"`
	Author   string         `json:"author,omitempty"`
	Subject  string         `json:"subject,omitempty"`
	PageSize *jsonSize      `json:"pageSize,omitempty"`
	Margin   *jsonMargin    `json:"margin,omitempty"`
	Style    *jsonStyle     `json:"style,omitempty"`
	Sections *[]jsonSection `json:"sections"`
}

type jsonSection struct {
	PageSize   *jsonSize       `json:"pageSize,omitempty"`
	Margin     *jsonMargin     `json:"margin,omitempty"`
	Paragraphs []jsonParagraph `json:"paragraphs"`
}

type jsonParagraph struct {
	Style *jsonStyle `json:"style,omitempty"`
	Runs  []jsonRun  `json:"runs"`
}

type jsonRun struct {
	Text  *string    `json:"text"`
	Style *jsonStyle `json:"style,omitempty"`
}

type jsonStyle struct {
	Family        *string  `json:"family,omitempty"`
	Size          *float64 `json:"size,omitempty"`
	Weight        *string  `json:"weight,omitempty"`
	Italic        *bool    `json:"italic,omitempty"`
	Color         *[]int   `json:"color,omitempty"`
	Align         *string  `json:"align,omitempty"`
	LineHeight    *float64 `json:"lineHeight,omitempty"`
	SpacingBefore *float64 `json:"spacingBefore,omitempty"`
	SpacingAfter  *float64 `json:"spacingAfter,omitempty"`
	Indent        *float64 `json:"indent,omitempty"`
}

type jsonSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonMargin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Encode serializes a document to indented UTF-8 JSON.
func Encode(d *pdfdoc.Document) ([]byte, error) {
	wire := jsonDocument{
		Title:    d.Title,
		Author:   d.Author,
		Subject:  d.Subject,
		PageSize: &jsonSize{Width: d.PageSize.Width, Height: d.PageSize.Height},
		Margin:   &jsonMargin{Top: d.Margin.Top, Right: d.Margin.Right, Bottom: d.Margin.Bottom, Left: d.Margin.Left},
		Style:    encodeStyle(d.Style),
	}
	sections := make([]jsonSection, 0, len(d.Sections()))
	for _, sec := range d.Sections() {
		ws := jsonSection{Paragraphs: make([]jsonParagraph, 0, len(sec.Paragraphs()))}
		if sec.PageSize != nil {
			ws.PageSize = &jsonSize{Width: sec.PageSize.Width, Height: sec.PageSize.Height}
		}
		if sec.Margin != nil {
			ws.Margin = &jsonMargin{Top: sec.Margin.Top, Right: sec.Margin.Right, Bottom: sec.Margin.Bottom, Left: sec.Margin.Left}
		}
		for _, par := range sec.Paragraphs() {
			wp := jsonParagraph{
				Style: encodeStyle(par.Style),
				Runs:  make([]jsonRun, 0, len(par.Runs())),
			}
			for _, run := range par.Runs() {
				text := run.Text
				wp.Runs = append(wp.Runs, jsonRun{Text: &text, Style: encodeStyle(run.Style)})
			}
			ws.Paragraphs = append(ws.Paragraphs, wp)
		}
		sections = append(sections, ws)
	}
	wire.Sections = &sections

	out, err := json.MarshalIndent(&wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("docjson: encoding document: %w", err)
	}
	return out, nil
}

// Decode reconstructs a document from its JSON form. Unknown keys are
// ignored. Malformed shapes fail with *ParseError; well-shaped but
// invalid values fail with *ValidationError.
func Decode(data []byte) (*pdfdoc.Document, error) {
	var wire jsonDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &ParseError{Msg: "invalid document JSON", Err: err}
	}
	if wire.Sections == nil {
		return nil, parseErrorf("sections", "missing required key")
	}

	opts := []pdfdoc.Option{
		pdfdoc.WithMetadata(wire.Title, wire.Author, wire.Subject),
	}
	if wire.PageSize != nil {
		opts = append(opts, pdfdoc.WithPageSize(pdfdoc.Size{Width: wire.PageSize.Width, Height: wire.PageSize.Height}))
	}
	if wire.Margin != nil {
		opts = append(opts, pdfdoc.WithMargin(pdfdoc.Margin{
			Top: wire.Margin.Top, Right: wire.Margin.Right,
			Bottom: wire.Margin.Bottom, Left: wire.Margin.Left,
		}))
	}
	if wire.Style != nil {
		// WithDefaultStyle merges over the built-in defaults, so the
		// document style stays fully populated even if the file carries
		// a partial one.
		st, err := decodeStyle(wire.Style, "style")
		if err != nil {
			return nil, err
		}
		opts = append(opts, pdfdoc.WithDefaultStyle(st))
	}
	d := pdfdoc.New(opts...)

	for si, ws := range *wire.Sections {
		sec := d.AddSection()
		if ws.PageSize != nil {
			sec.PageSize = &pdfdoc.Size{Width: ws.PageSize.Width, Height: ws.PageSize.Height}
		}
		if ws.Margin != nil {
			sec.Margin = &pdfdoc.Margin{
				Top: ws.Margin.Top, Right: ws.Margin.Right,
				Bottom: ws.Margin.Bottom, Left: ws.Margin.Left,
			}
		}
		for pi, wp := range ws.Paragraphs {
			parPath := fmt.Sprintf("sections[%d].paragraphs[%d]", si, pi)
			st := pdfdoc.Style{}
			if wp.Style != nil {
				var err error
				if st, err = decodeStyle(wp.Style, parPath+".style"); err != nil {
					return nil, err
				}
			}
			if _, err := d.AddParagraph(st); err != nil {
				return nil, parseErrorf(parPath, "%v", err)
			}
			for ri, wr := range wp.Runs {
				runPath := fmt.Sprintf("%s.runs[%d]", parPath, ri)
				if wr.Text == nil {
					return nil, parseErrorf(runPath+".text", "missing required key")
				}
				if *wr.Text == "" {
					return nil, validationErrorf(runPath+".text", "run text is empty")
				}
				st := pdfdoc.Style{}
				if wr.Style != nil {
					var err error
					if st, err = decodeStyle(wr.Style, runPath+".style"); err != nil {
						return nil, err
					}
				}
				if _, err := d.AddRun(*wr.Text, st); err != nil {
					return nil, parseErrorf(runPath, "%v", err)
				}
			}
		}
	}
	return d, nil
}

// encodeStyle converts a style to its wire form, or nil when no field is
// set so the key is omitted entirely.
func encodeStyle(s pdfdoc.Style) *jsonStyle {
	w := &jsonStyle{
		Family:        s.Family,
		Size:          s.Size,
		Italic:        s.Italic,
		LineHeight:    s.LineHeight,
		SpacingBefore: s.SpacingBefore,
		SpacingAfter:  s.SpacingAfter,
		Indent:        s.Indent,
	}
	if s.Weight != nil {
		tok := s.Weight.String()
		w.Weight = &tok
	}
	if s.Align != nil {
		tok := s.Align.String()
		w.Align = &tok
	}
	if s.Color != nil {
		rgb := []int{s.Color.R, s.Color.G, s.Color.B}
		w.Color = &rgb
	}
	if *w == (jsonStyle{}) {
		return nil
	}
	return w
}

func decodeStyle(w *jsonStyle, path string) (pdfdoc.Style, error) {
	s := pdfdoc.Style{
		Family:        w.Family,
		Size:          w.Size,
		Italic:        w.Italic,
		LineHeight:    w.LineHeight,
		SpacingBefore: w.SpacingBefore,
		SpacingAfter:  w.SpacingAfter,
		Indent:        w.Indent,
	}
	if w.Weight != nil {
		wt, err := pdfdoc.ParseWeight(*w.Weight)
		if err != nil {
			return pdfdoc.Style{}, validationErrorf(path+".weight", "unknown weight %q", *w.Weight)
		}
		s.Weight = &wt
	}
	if w.Align != nil {
		al, err := pdfdoc.ParseAlign(*w.Align)
		if err != nil {
			return pdfdoc.Style{}, validationErrorf(path+".align", "unknown alignment %q", *w.Align)
		}
		s.Align = &al
	}
	if w.Color != nil {
		rgb := *w.Color
		if len(rgb) != 3 {
			return pdfdoc.Style{}, parseErrorf(path+".color", "color must have exactly 3 components, got %d", len(rgb))
		}
		for _, c := range rgb {
			if c < 0 || c > 255 {
				return pdfdoc.Style{}, validationErrorf(path+".color", "component %d outside 0-255", c)
			}
		}
		s.Color = &pdfdoc.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	}
	return s, nil
}
