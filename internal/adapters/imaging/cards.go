package imaging

import (
	"fmt"
	"image"
	"strconv"

	"wrapped/internal/domain/record"
	"wrapped/internal/domain/slide"
)

const margin = 40

// Slide renders any deck slide as a standalone PNG. The layout mirrors the
// slots of the descriptor top to bottom: lead, hero, sub, note panel, stat
// blocks, ranking rows, footnote.
func (r *Renderer) Slide(d slide.Descriptor, f Format) ([]byte, error) {
	bw, bh := f.baseDimensions()
	c := r.newCanvas(bw, bh, d.Background)
	maxWidth := bw - 2*margin

	y := bh / 5
	if d.Lead != "" {
		y = c.centerWrapped(d.Lead, y, sizeBody, maxWidth, colFaint)
		y += c.lineHeight(sizeBody) / 2
	}
	if d.Hero != "" {
		size := float64(sizeHero)
		if c.textWidth(d.Hero, size) > maxWidth {
			size = sizeTitle
		}
		y += c.lineHeight(size) / 2
		c.centerText(d.Hero, y, size, colWhite)
		y += c.lineHeight(size)
	}
	if d.Sub != "" {
		y = c.centerWrapped(d.Sub, y, sizeTitle, maxWidth, colWhite)
		y += c.lineHeight(sizeTitle) / 2
	}
	if d.Note != "" {
		y = c.notePanel(d.Note, y, maxWidth)
	}
	if len(d.Blocks) > 0 {
		y = c.statBlocks(d.Blocks, y, maxWidth)
	}
	if len(d.Ranking) > 0 {
		y = c.rankingRows(d.Ranking, y, maxWidth)
	}
	_ = y
	if d.Footnote != "" {
		c.centerText(d.Footnote, bh-margin, sizeSmall, colFaint)
	}

	w, h := f.Dimensions()
	return c.encode(w, h)
}

// MemberSummary renders the shareable recap card for one member.
func (r *Renderer) MemberSummary(m record.Member, stats record.CommunityStats, f Format) ([]byte, error) {
	d := slide.Descriptor{
		Background: slide.BgBrand,
		Lead:       "2025 WRAPPED",
		Hero:       m.FirstName,
		Blocks: []slide.Block{
			{Label: "Bezoeken", Value: strconv.Itoa(m.Visits)},
			{Label: "Favoriete dag", Value: m.FavoriteDay},
			{Label: "Favoriete coach", Value: m.FavoriteCoaches},
			{Label: "Favoriete les", Value: m.FavoriteClassType},
		},
		Footnote: fmt.Sprintf("Samen met %d andere leden • #2025wrapped", stats.TotalMembers),
	}
	if m.Percentile > 0 {
		d.Sub = fmt.Sprintf("Top %d%% van de gym", m.Percentile)
	}
	return r.Slide(d, f)
}

// CoachSummary renders the shareable recap card for one coach.
func (r *Renderer) CoachSummary(co record.Coach, f Format) ([]byte, error) {
	d := slide.Descriptor{
		Background: slide.BgDark,
		Lead:       "2025 WRAPPED • COACH",
		Hero:       co.FirstName,
		Blocks: []slide.Block{
			{Label: "Lessen gegeven", Value: strconv.Itoa(co.ClassesGiven)},
			{Label: "Leden getraind", Value: strconv.Itoa(co.MembersTrained)},
			{Label: "Favoriete dag", Value: co.FavoriteDay},
			{Label: "Top lestype", Value: co.TopClassType},
		},
		Footnote: "#2025wrapped",
	}
	return r.Slide(d, f)
}

// Quote renders a feedback answer as a quote card: the text front and
// center, attributed to the member's first name.
func (r *Renderer) Quote(name, text string, f Format) ([]byte, error) {
	bw, bh := f.baseDimensions()
	c := r.newCanvas(bw, bh, slide.BgPlum)
	maxWidth := bw - 2*margin

	c.centerText("2026", bh/5, sizeTitle, colFaint)
	y := bh/5 + c.lineHeight(sizeTitle)*2
	y = c.centerWrapped("“"+text+"”", y, sizeTitle, maxWidth, colWhite)
	y += c.lineHeight(sizeBody)
	c.centerText("— "+name, y, sizeBody, colFaint)
	c.centerText("#2025wrapped", bh-margin, sizeSmall, colFaint)

	w, h := f.Dimensions()
	return c.encode(w, h)
}

// notePanel draws a translucent panel with wrapped body text and returns the
// baseline below it.
func (c *canvas) notePanel(text string, y, maxWidth int) int {
	pad := 16
	inner := maxWidth - 2*pad
	lines := c.wrap(text, sizeBody, inner)
	lh := c.lineHeight(sizeBody)
	boxH := len(lines)*lh + 2*pad
	c.fillRect(rect(margin, y, margin+maxWidth, y+boxH), colBoxWhite)
	ty := y + pad + lh*3/4
	for _, line := range lines {
		c.centerText(line, ty, sizeBody, colWhite)
		ty += lh
	}
	return y + boxH + pad
}

// statBlocks draws labelled stat boxes in a two-column grid.
func (c *canvas) statBlocks(blocks []slide.Block, y, maxWidth int) int {
	gap := 12
	colW := (maxWidth - gap) / 2
	boxH := c.lineHeight(sizeSmall) + c.lineHeight(sizeTitle) + 24
	hasCaption := false
	for _, b := range blocks {
		if b.Caption != "" {
			hasCaption = true
		}
	}
	if hasCaption {
		boxH += c.lineHeight(sizeSmall)
	}
	for i, b := range blocks {
		col := i % 2
		x := margin + col*(colW+gap)
		c.fillRect(rect(x, y, x+colW, y+boxH), colBoxWhite)
		cx := x + colW/2
		ly := y + 12 + c.lineHeight(sizeSmall)*3/4
		c.drawText(b.Label, cx-c.textWidth(b.Label, sizeSmall)/2, ly, sizeSmall, colFaint)
		vy := ly + c.lineHeight(sizeTitle)
		value := b.Value
		size := float64(sizeTitle)
		if c.textWidth(value, size) > colW-16 {
			size = sizeBody
		}
		c.drawText(value, cx-c.textWidth(value, size)/2, vy, size, colWhite)
		if b.Caption != "" {
			cy := vy + c.lineHeight(sizeSmall)
			c.drawText(b.Caption, cx-c.textWidth(b.Caption, sizeSmall)/2, cy, sizeSmall, colFaint)
		}
		if col == 1 || i == len(blocks)-1 {
			y += boxH + gap
		}
	}
	return y + gap
}

// rankingRows draws medal rows left-aligned with counts on the right.
func (c *canvas) rankingRows(items []slide.RankedItem, y, maxWidth int) int {
	lh := c.lineHeight(sizeTitle)
	rowH := lh + 20
	for _, item := range items {
		c.fillRect(rect(margin, y, margin+maxWidth, y+rowH), colBoxWhite)
		baseline := y + 10 + lh*3/4
		c.drawText(item.Medal+" "+item.Name, margin+16, baseline, sizeBody, colWhite)
		count := strconv.Itoa(item.Count) + "x"
		c.drawText(count, margin+maxWidth-16-c.textWidth(count, sizeBody), baseline, sizeBody, colFaint)
		y += rowH + 10
	}
	return y
}

func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1)
}
