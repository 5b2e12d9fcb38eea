package formatter

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/template"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatTemplateList(t *testing.T) {
	out := stripANSI(FormatTemplateList([]*template.Template{
		{ID: "ecommerce", Name: "E-commerce Journey", Cards: make([]template.CardSpec, 5), Source: "builtin:ecommerce.yaml"},
		{ID: "retail", Name: "Retail", Cards: make([]template.CardSpec, 2), Source: "/tmp/retail.yaml"},
	}))

	assert.Contains(t, out, "TEMPLATES")
	assert.Contains(t, out, "E-commerce Journey")
	assert.Contains(t, out, "retail")
	assert.Contains(t, out, "builtin:ecommerce.yaml")
	assert.Regexp(t, `1\s+ecommerce`, out)
}

func TestFormatTemplateShow(t *testing.T) {
	tpl := &template.Template{
		ID:          "sample",
		Name:        "Sample Journey",
		Description: "Two stages and a stray card.",
		Cards: []template.CardSpec{
			{Stage: "Awareness", Touchpoint: "Web"},
			{Stage: "Awareness", Touchpoint: "Email", Row: 1},
			{Stage: "Decision", Touchpoint: "Phone"},
			{Stage: "Retention", Touchpoint: "Chatbot"},
		},
	}
	out := stripANSI(FormatTemplateShow(tpl, domain.DefaultStages()))

	assert.Contains(t, out, "Sample Journey")
	assert.Contains(t, out, "Two stages and a stray card.")
	assert.Contains(t, out, "├─ ◎ Web")
	assert.Contains(t, out, "└─ ✉ Email  row 1")
	assert.Contains(t, out, "└─ ☎ Phone")
	assert.Contains(t, out, "Unplaced")
	assert.Contains(t, out, "◆ Chatbot")
	assert.Regexp(t, `Consideration\s+\[ 0 \]`, out)
}
