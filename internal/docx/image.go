package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	// Register decoders so DecodeConfig can size every format we embed.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Drawing is a w:drawing holding a single inline picture. Only the fields
// this package emits are modeled; a drawing read from disk is normalized to
// the same shape (extent plus blip relationship), which is enough to
// round-trip pictures we created.
type Drawing struct {
	CX    int64  // width in EMUs
	CY    int64  // height in EMUs
	RelID string // relationship to the image part
	DocID int    // document-unique drawing id
	Name  string
}

func (dr *Drawing) parse(d *xml.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "extent":
				dr.CX, _ = strconv.ParseInt(attrByLocal(t.Attr, "cx"), 10, 64)
				dr.CY, _ = strconv.ParseInt(attrByLocal(t.Attr, "cy"), 10, 64)
			case "docPr":
				dr.DocID = atoi(attrByLocal(t.Attr, "id"))
				dr.Name = attrByLocal(t.Attr, "name")
			case "blip":
				dr.RelID = attrByLocal(t.Attr, "embed")
			}
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

func (dr *Drawing) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	open := func(name string, attrs ...xml.Attr) error {
		return e.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
	}
	closeEl := func(name string) error {
		return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
	}
	attr := func(name, val string) xml.Attr {
		return xml.Attr{Name: xml.Name{Local: name}, Value: val}
	}
	empty := func(name string, attrs ...xml.Attr) error {
		if err := open(name, attrs...); err != nil {
			return err
		}
		return closeEl(name)
	}

	cx := strconv.FormatInt(dr.CX, 10)
	cy := strconv.FormatInt(dr.CY, 10)
	id := itoa(dr.DocID)
	name := dr.Name
	if name == "" {
		name = "Picture " + id
	}

	if err := open("w:drawing"); err != nil {
		return err
	}
	if err := open("wp:inline",
		attr("distT", "0"), attr("distB", "0"), attr("distL", "0"), attr("distR", "0")); err != nil {
		return err
	}
	if err := empty("wp:extent", attr("cx", cx), attr("cy", cy)); err != nil {
		return err
	}
	if err := empty("wp:docPr", attr("id", id), attr("name", name)); err != nil {
		return err
	}
	if err := open("a:graphic"); err != nil {
		return err
	}
	if err := open("a:graphicData", attr("uri", nsPic)); err != nil {
		return err
	}
	if err := open("pic:pic"); err != nil {
		return err
	}
	if err := open("pic:nvPicPr"); err != nil {
		return err
	}
	if err := empty("pic:cNvPr", attr("id", id), attr("name", name)); err != nil {
		return err
	}
	if err := empty("pic:cNvPicPr"); err != nil {
		return err
	}
	if err := closeEl("pic:nvPicPr"); err != nil {
		return err
	}
	if err := open("pic:blipFill"); err != nil {
		return err
	}
	if err := empty("a:blip", attr("r:embed", dr.RelID)); err != nil {
		return err
	}
	if err := open("a:stretch"); err != nil {
		return err
	}
	if err := empty("a:fillRect"); err != nil {
		return err
	}
	if err := closeEl("a:stretch"); err != nil {
		return err
	}
	if err := closeEl("pic:blipFill"); err != nil {
		return err
	}
	if err := open("pic:spPr"); err != nil {
		return err
	}
	if err := open("a:xfrm"); err != nil {
		return err
	}
	if err := empty("a:off", attr("x", "0"), attr("y", "0")); err != nil {
		return err
	}
	if err := empty("a:ext", attr("cx", cx), attr("cy", cy)); err != nil {
		return err
	}
	if err := closeEl("a:xfrm"); err != nil {
		return err
	}
	if err := open("a:prstGeom", attr("prst", "rect")); err != nil {
		return err
	}
	if err := empty("a:avLst"); err != nil {
		return err
	}
	if err := closeEl("a:prstGeom"); err != nil {
		return err
	}
	if err := closeEl("pic:spPr"); err != nil {
		return err
	}
	if err := closeEl("pic:pic"); err != nil {
		return err
	}
	if err := closeEl("a:graphicData"); err != nil {
		return err
	}
	if err := closeEl("a:graphic"); err != nil {
		return err
	}
	if err := closeEl("wp:inline"); err != nil {
		return err
	}
	return closeEl("w:drawing")
}

var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
}

// AddImage embeds the image file as a media part and appends an inline
// drawing to the given paragraph. Width and height are centimeters; zero
// means "derive from the image's pixel size at 96 DPI", and a single
// provided dimension preserves the aspect ratio.
func (d *Document) AddImage(p *Paragraph, imagePath string, widthCm, heightCm float64) error {
	ext := strings.ToLower(filepath.Ext(imagePath))
	ctype, ok := imageContentTypes[ext]
	if !ok {
		return fmt.Errorf("unsupported image format %q", ext)
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image %s: %w", filepath.Base(imagePath), err)
	}

	var cx, cy int64
	switch {
	case widthCm > 0 && heightCm > 0:
		cx, cy = CmToEMU(widthCm), CmToEMU(heightCm)
	case widthCm > 0:
		cx = CmToEMU(widthCm)
		cy = int64(float64(cx) * float64(cfg.Height) / float64(cfg.Width))
	case heightCm > 0:
		cy = CmToEMU(heightCm)
		cx = int64(float64(cy) * float64(cfg.Width) / float64(cfg.Height))
	default:
		cx, cy = PixelsToEMU(cfg.Width), PixelsToEMU(cfg.Height)
	}

	partName := d.nextMediaPartName(ext)
	d.parts[partName] = data
	d.ensureDefaultContentType(strings.TrimPrefix(ext, "."), ctype)
	relID := d.addRelationship(relTypeImage, strings.TrimPrefix(partName, "word/"))

	d.drawingSeq++
	run := &Run{Items: []RunItem{&Drawing{
		CX:    cx,
		CY:    cy,
		RelID: relID,
		DocID: d.drawingSeq,
		Name:  filepath.Base(imagePath),
	}}}
	p.Children = append(p.Children, run)
	return nil
}

func (d *Document) nextMediaPartName(ext string) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("word/media/image%d%s", i, ext)
		if _, exists := d.parts[name]; !exists {
			return name
		}
	}
}
