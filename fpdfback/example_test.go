package fpdfback_test

import (
	"bytes"
	"fmt"

	pdfdoc "github.com/rana/pdf-doc"
	"github.com/rana/pdf-doc/fpdfback"
	"github.com/rana/pdf-doc/render"
)

func Example() {
	doc := pdfdoc.NewBuilder(nil).
		AddParagraph(pdfdoc.Style{}.WithAlign(pdfdoc.AlignCenter)).
		AddRun("Hello, World!", pdfdoc.Style{}.WithSize(24).WithWeight(pdfdoc.WeightBold)).
		AddParagraph(pdfdoc.Style{}).
		AddText("Rendered through the fpdf backend.").
		Document()

	out, err := render.New(fpdfback.New()).Render(doc)
	if err != nil {
		fmt.Println("render failed:", err)
		return
	}
	fmt.Println("PDF generated:", bytes.HasPrefix(out, []byte("%PDF")))
	// Output:
	// PDF generated: true
}
