package docjson_test

import (
	"fmt"
	"strings"

	pdfdoc "github.com/rana/pdf-doc"
	"github.com/rana/pdf-doc/docjson"
)

func ExampleDecode() {
	data := []byte(`{
		"title": "Greeting",
		"sections": [{
			"paragraphs": [{
				"style": {"align": "justify"},
				"runs": [
					{"text": "Hello ", "style": {"weight": "bold"}},
					{"text": "World"}
				]
			}]
		}]
	}`)

	doc, err := docjson.Decode(data)
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}

	var sb strings.Builder
	for _, sec := range doc.Sections() {
		for _, par := range sec.Paragraphs() {
			for _, run := range par.Runs() {
				sb.WriteString(run.Text)
			}
		}
	}
	fmt.Println(doc.Title)
	fmt.Println(sb.String())
	// Output:
	// Greeting
	// Hello World
}

func ExampleEncode() {
	doc := pdfdoc.NewBuilder(nil).
		AddRun("bold words", pdfdoc.Style{}.WithWeight(pdfdoc.WeightBold)).
		Document()

	data, err := docjson.Encode(doc)
	if err != nil {
		fmt.Println("encode failed:", err)
		return
	}

	round, err := docjson.Decode(data)
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	fmt.Println("round-trips:", round.Equal(doc))
	// Output:
	// round-trips: true
}
