package docedit

import (
	"os"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// InsertImage embeds the image file into the document after the paragraph
// at afterParagraph (AppendSentinel appends). Width and height are in
// centimetres; giving only one preserves the image's aspect ratio, giving
// neither uses the pixel dimensions at 96 DPI.
func InsertImage(doc *docx.Document, imagePath string, widthCm, heightCm float64, afterParagraph int) error {
	if _, err := os.Stat(imagePath); err != nil {
		return errf(KindNotFound, "image file %q not found", imagePath)
	}
	if widthCm < 0 || heightCm < 0 {
		return errf(KindInvalidParameter, "image dimensions must not be negative")
	}
	paras := doc.Paragraphs()
	if err := checkInsertIndex(afterParagraph, len(paras), "paragraph"); err != nil {
		return err
	}
	p := &docx.Paragraph{}
	if err := doc.AddImage(p, imagePath, widthCm, heightCm); err != nil {
		return wrapIO("embed image", err)
	}
	if err := doc.InsertBlockAfterParagraph(afterParagraph, p); err != nil {
		return errf(KindRange, "%s", err.Error())
	}
	return nil
}
