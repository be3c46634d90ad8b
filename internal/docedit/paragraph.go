package docedit

import (
	"github.com/dgallion1/wordsmith/internal/docx"
)

// replaceParagraphText is the shared snapshot/clear/rewrite/restore helper:
// it keeps the paragraph's named style and alignment, collapses the run
// structure to a single fresh run holding the new text, and reapplies the
// snapshotted paragraph-level properties. Mixed run formatting inside the
// paragraph is intentionally lost.
func replaceParagraphText(p *docx.Paragraph, text string) {
	style := p.StyleID()
	alignment := p.Alignment()
	p.Children = nil
	p.AddRun(text)
	if style != "" {
		p.SetStyleID(style)
	}
	if alignment != "" {
		p.SetAlignment(alignment)
	}
}

// AddParagraph appends a paragraph with the given text, optionally styled
// and aligned. An unknown style name is a style_not_found failure; nothing
// is appended.
func AddParagraph(doc *docx.Document, text, styleName, alignment string) error {
	var styleID string
	if styleName != "" {
		st := doc.Styles().ByName(styleName)
		if st == nil {
			return errf(KindStyleNotFound, "style %q not found in document", styleName)
		}
		styleID = st.StyleID
	}
	p := &docx.Paragraph{}
	if text != "" {
		p.AddRun(text)
	}
	if styleID != "" {
		p.SetStyleID(styleID)
	}
	if alignment != "" {
		if err := p.SetAlignment(alignment); err != nil {
			return errf(KindInvalidParameter, "%s", err.Error())
		}
	}
	doc.AddBlock(p)
	return nil
}

// EditParagraphs replaces the text of paragraphs start..end inclusive with
// the given replacement texts, one per paragraph. end == start edits a
// single paragraph. Style and alignment of every edited paragraph survive.
func EditParagraphs(doc *docx.Document, start, end int, texts []string) error {
	paras := doc.Paragraphs()
	if err := checkIndex(start, len(paras), "paragraph"); err != nil {
		return err
	}
	if err := checkIndex(end, len(paras), "paragraph"); err != nil {
		return err
	}
	if end < start {
		return errf(KindInvalidParameter, "end index %d precedes start index %d", end, start)
	}
	span := end - start + 1
	if len(texts) != span {
		return errf(KindInvalidParameter, "range covers %d paragraphs but %d replacement texts supplied", span, len(texts))
	}
	for i := 0; i < span; i++ {
		replaceParagraphText(paras[start+i], texts[i])
	}
	return nil
}

// DeleteParagraphs removes the paragraphs at the given indices. The whole
// set is validated against the paragraph count before anything is removed,
// then applied in descending index order so earlier removals never shift a
// later target.
func DeleteParagraphs(doc *docx.Document, indices []int) (int, error) {
	paras := doc.Paragraphs()
	ordered, err := deleteOrder(indices, len(paras), "paragraph")
	if err != nil {
		return 0, err
	}
	for _, idx := range ordered {
		if rmErr := doc.RemoveParagraph(idx); rmErr != nil {
			return 0, wrapIO("remove paragraph", rmErr)
		}
	}
	return len(ordered), nil
}
