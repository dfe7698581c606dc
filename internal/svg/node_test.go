package svg

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Serialize(t *testing.T) {
	doc := NewDocument(700, 160)
	doc.Root.Append(
		El("rect", A("width", "100%"), A("height", "100%")),
		El("g", A("id", "bars")).Append(
			El("rect", A("x", 10), A("y", 72.5)).Append(El("title").Text("2024-01-01")),
		),
	)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="700" height="160" viewBox="0 0 700 160">
  <rect width="100%" height="100%"/>
  <g id="bars">
    <rect x="10" y="72.5">
      <title>2024-01-01</title>
    </rect>
  </g>
</svg>
`
	assert.Equal(t, want, doc.String())
}

func TestDocument_EscapesAttributesAndText(t *testing.T) {
	doc := NewDocument(10, 10)
	doc.Root.Append(
		El("text", A("data-user", `"><script>`)).Text(`<b>Tom & "Jerry"</b>`),
	)

	out := doc.String()
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;b&gt;Tom &amp; &#34;Jerry&#34;&lt;/b&gt;")

	// Output must stay well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
}

func TestElement_MultipleTextChildrenOnOwnLines(t *testing.T) {
	e := El("style").Text(".a { fill: red; }").Text(".b { fill: blue; }")
	doc := &Document{Root: e}

	assert.Contains(t, doc.String(), "<style>\n  .a { fill: red; }\n  .b { fill: blue; }\n</style>")
}

func TestElement_Find(t *testing.T) {
	inner := El("g", A("id", "inner"))
	root := El("svg").Append(El("g", A("id", "outer")).Append(inner))

	assert.Same(t, inner, root.Find("inner"))
	assert.Nil(t, root.Find("missing"))
}

func TestA_Formatting(t *testing.T) {
	assert.Equal(t, "12", A("x", 12).Value)
	assert.Equal(t, "0.25", A("x", 0.25).Value)
	assert.Equal(t, "1000000", A("x", 1e6).Value)
	assert.Equal(t, "s", A("x", "s").Value)
}
