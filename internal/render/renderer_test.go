package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-studio/internal/layout"
	"resume-studio/internal/model"
	"resume-studio/internal/template"
)

func sampleBlocks() []layout.Block {
	return []layout.Block{
		{
			Page: 0, Column: 0, Section: template.SectionHeader, Kind: layout.KindHeader,
			X: 36, Y: 36, Width: 540, Height: 61,
			Lines: []layout.Line{
				{Role: layout.RoleName, Text: "Ada Lovelace"},
				{Role: layout.RoleContact, Text: "ada@example.com | London"},
			},
		},
		{
			Page: 1, Column: 0, Section: template.SectionExperience, Kind: layout.KindEntry, EntryID: "exp-1",
			X: 36, Y: 36, Width: 540, Height: 47,
			Lines: []layout.Line{
				{Role: layout.RoleTitle, Text: "Principal Engineer"},
				{Role: layout.RoleBullet, Text: "continued line", Indent: 12},
			},
		},
	}
}

func TestRenderPageNodes(t *testing.T) {
	tree := Render(sampleBlocks(), template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter())

	assert.Equal(t, 2, tree.PageCount)
	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, "page-0", tree.Root.Children[0].ID)
	assert.Equal(t, "page-1", tree.Root.Children[1].ID)
	assert.Contains(t, tree.Root.Children[0].Style, "width:612.00pt")
	assert.Contains(t, tree.Root.Children[0].Style, "height:792.00pt")
}

func TestRenderEmptyBlocksStillOnePage(t *testing.T) {
	tree := Render(nil, template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter())
	assert.Equal(t, 1, tree.PageCount)
	require.Len(t, tree.Root.Children, 1)
}

func TestRenderBlockGeometryFromLayout(t *testing.T) {
	tree := Render(sampleBlocks(), template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter())

	block := tree.Root.Children[0].Children[0]
	assert.Contains(t, block.Style, "left:36.00pt")
	assert.Contains(t, block.Style, "top:36.00pt")
	assert.Contains(t, block.Style, "width:540.00pt")

	lines := block.Children
	require.Len(t, lines, 2)
	assert.Equal(t, "line role-name", lines[0].Class)
	assert.Equal(t, "Ada Lovelace", lines[0].Text)
}

func TestRenderIndentedLine(t *testing.T) {
	tree := Render(sampleBlocks(), template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter())

	bullet := tree.Root.Children[1].Children[0].Children[1]
	assert.Contains(t, bullet.Style, "margin-left:12.00pt")
}

func TestStylesheetThemeColor(t *testing.T) {
	theme := model.DefaultTheme()
	theme.PrimaryColor = "#ff00aa"
	tree := Render(nil, template.Resolve(template.Modern), theme, layout.Letter())

	assert.Contains(t, tree.CSS, "#ff00aa")
	assert.NotContains(t, tree.CSS, model.DefaultTheme().PrimaryColor)
}

func TestStylesheetHeadingScale(t *testing.T) {
	theme := model.DefaultTheme()
	theme.HeadingSize = "lg"
	tree := Render(nil, template.Resolve(template.Modern), theme, layout.Letter())

	// name 26pt and heading 14pt scaled by 1.15; line heights untouched
	assert.Contains(t, tree.CSS, "font-size:29.90pt;line-height:32.00pt")
	assert.Contains(t, tree.CSS, "font-size:16.10pt;line-height:24.00pt")
}

func TestStylesheetSerifTemplates(t *testing.T) {
	tree := Render(nil, template.Resolve(template.Executive), model.DefaultTheme(), layout.Letter())
	assert.Contains(t, tree.CSS, "serif")
	assert.NotContains(t, tree.CSS, "sans-serif")
}

func TestStylesheetUnknownFontFallsBack(t *testing.T) {
	theme := model.DefaultTheme()
	theme.FontFamily = "comic-sans"
	tree := Render(nil, template.Resolve(template.Modern), theme, layout.Letter())
	assert.Contains(t, tree.CSS, "'Inter'")
}

func TestBlockClassHeaderStyles(t *testing.T) {
	header := layout.Block{Kind: layout.KindHeader, Section: template.SectionHeader}

	assert.NotContains(t, blockClass(header, template.Resolve(template.Modern)), "banner")
	assert.Contains(t, blockClass(header, template.Resolve(template.Creative)), "banner")
	executive := blockClass(header, template.Resolve(template.Executive))
	assert.Contains(t, executive, "centered")
	assert.Contains(t, executive, "quoted")
}

func TestWriteHTMLEscapesText(t *testing.T) {
	tree := Render([]layout.Block{{
		Page: 0, Kind: layout.KindEntry, Section: template.SectionExperience,
		Lines: []layout.Line{{Role: layout.RoleBody, Text: `<script>alert("x")</script>`}},
	}}, template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter())

	var b strings.Builder
	require.NoError(t, WriteHTML(&b, tree, HostOptions{Title: `A & B <Resume>`, Interactive: true}))

	out := b.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "A &amp; B &lt;Resume&gt;")
}

func TestWriteHTMLHostModes(t *testing.T) {
	tree := Render(nil, template.Resolve(template.Modern), model.DefaultTheme(), layout.Letter())

	var interactive, capture strings.Builder
	require.NoError(t, WriteHTML(&interactive, tree, HostOptions{Interactive: true}))
	require.NoError(t, WriteHTML(&capture, tree, HostOptions{Interactive: false}))

	assert.Contains(t, interactive.String(), "box-shadow")
	assert.NotContains(t, capture.String(), "box-shadow")
	assert.Contains(t, capture.String(), ".page{margin:0;}")
	// the page markup itself is identical in both hosts
	body := func(s string) string { return s[strings.Index(s, "<body>"):] }
	assert.Equal(t, body(interactive.String()), body(capture.String()))
}

func TestWriteHTMLDeterministic(t *testing.T) {
	blocks := sampleBlocks()
	def := template.Resolve(template.Classic)
	theme := model.DefaultTheme()
	page := layout.Letter()

	var first, second strings.Builder
	require.NoError(t, WriteHTML(&first, Render(blocks, def, theme, page), HostOptions{Title: "r"}))
	require.NoError(t, WriteHTML(&second, Render(blocks, def, theme, page), HostOptions{Title: "r"}))
	assert.Equal(t, first.String(), second.String())
}
