package docx

// Built-in parts for documents created from scratch. The style table mirrors
// the set a word processor seeds a blank document with, so style lookups by
// name ("Heading 1", "List Bullet", ...) work immediately.

func defaultSectPr() *SectPr {
	// US Letter, 1 inch margins.
	return &SectPr{
		PageSize: &PageSize{W: "12240", H: "15840"},
		Margins: &PageMargins{
			Top: "1440", Right: "1440", Bottom: "1440", Left: "1440",
			Header: "720", Footer: "720", Gutter: "0",
		},
	}
}

func defaultContentTypes() *ContentTypes {
	return &ContentTypes{
		Xmlns: nsContentType,
		Defaults: []CTDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []CTOverride{
			{PartName: "/word/document.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
			{PartName: "/word/styles.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		},
	}
}

func on() *OnOff { return &OnOff{} }

func headingStyle(id, name string, level int) *Style {
	sizes := map[int]int{1: 32, 2: 26, 3: 24, 4: 22, 5: 22, 6: 22}
	s := &Style{
		Type:    "paragraph",
		StyleID: id,
		Name:    &ValAttr{Val: name},
		BasedOn: &ValAttr{Val: "Normal"},
		QFormat: on(),
		ParaProps: &ParagraphProps{
			Spacing: &Spacing{Before: "240", After: "120"},
		},
		RunProps: &RunProps{
			Bold: on(),
			Size: &ValAttr{Val: itoa(sizes[level])},
		},
	}
	if level >= 4 {
		s.RunProps.Italic = on()
	}
	return s
}

func defaultStyles() *Styles {
	st := &Styles{
		DocDefaults: &DocDefaults{
			RunDefault: &RPrDefault{RunProps: &RunProps{
				Fonts: &Fonts{ASCII: "Calibri", HAnsi: "Calibri"},
				Size:  &ValAttr{Val: "22"},
			}},
			ParDefault: &PPrDefault{},
		},
	}
	st.Items = []*Style{
		{
			Type: "paragraph", StyleID: "Normal", Default: "1",
			Name: &ValAttr{Val: "Normal"}, QFormat: on(),
		},
		{
			Type: "character", StyleID: "DefaultParagraphFont", Default: "1",
			Name: &ValAttr{Val: "Default Paragraph Font"},
		},
		headingStyle("Heading1", "Heading 1", 1),
		headingStyle("Heading2", "Heading 2", 2),
		headingStyle("Heading3", "Heading 3", 3),
		headingStyle("Heading4", "Heading 4", 4),
		headingStyle("Heading5", "Heading 5", 5),
		headingStyle("Heading6", "Heading 6", 6),
		{
			Type: "paragraph", StyleID: "Title",
			Name: &ValAttr{Val: "Title"}, BasedOn: &ValAttr{Val: "Normal"}, QFormat: on(),
			ParaProps: &ParagraphProps{Spacing: &Spacing{After: "300"}},
			RunProps:  &RunProps{Bold: on(), Size: &ValAttr{Val: "56"}},
		},
		{
			Type: "paragraph", StyleID: "ListBullet",
			Name: &ValAttr{Val: "List Bullet"}, BasedOn: &ValAttr{Val: "Normal"}, QFormat: on(),
			ParaProps: &ParagraphProps{Indent: &Indent{Left: "720"}},
		},
		{
			Type: "paragraph", StyleID: "ListNumber",
			Name: &ValAttr{Val: "List Number"}, BasedOn: &ValAttr{Val: "Normal"}, QFormat: on(),
			ParaProps: &ParagraphProps{Indent: &Indent{Left: "720"}},
		},
		{
			Type: "paragraph", StyleID: "ListParagraph",
			Name: &ValAttr{Val: "List Paragraph"}, BasedOn: &ValAttr{Val: "Normal"}, QFormat: on(),
			ParaProps: &ParagraphProps{Indent: &Indent{Left: "720"}},
		},
		{
			Type: "table", StyleID: "TableGrid",
			Name: &ValAttr{Val: "Table Grid"},
		},
		{
			Type: "paragraph", StyleID: "Header",
			Name: &ValAttr{Val: "Header"}, BasedOn: &ValAttr{Val: "Normal"},
		},
		{
			Type: "paragraph", StyleID: "Footer",
			Name: &ValAttr{Val: "Footer"}, BasedOn: &ValAttr{Val: "Normal"},
		},
	}
	return st
}
