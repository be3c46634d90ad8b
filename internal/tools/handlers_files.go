package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/wordsmith/internal/automation"
	"github.com/dgallion1/wordsmith/internal/compare"
	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
)

func (s *Service) fileTools() []Definition {
	return []Definition{
		{
			Name:        "create_empty_txt",
			Description: "Create an empty plain-text file at the given name under the configured base directory.",
			Schema: schema(map[string]any{
				"filename": str("file name, .txt appended when missing"),
			}, "filename"),
			Handler: s.createEmptyTxt,
		},
		{
			Name:        "create_word_document",
			Description: "Create a new Word document with the built-in style set, optionally starting with a title paragraph.",
			Schema: schema(map[string]any{
				"filename": str("document name, .docx appended when missing"),
				"title":    str("optional document title, inserted as a Title-styled paragraph"),
			}, "filename"),
			Handler: s.createWordDocument,
		},
		{
			Name:        "open_and_read_word_document",
			Description: "Read a document and return a numbered listing of its paragraphs and tables with totals.",
			Schema: schema(map[string]any{
				"filename": str("document to read"),
			}, "filename"),
			Handler: s.openAndRead,
		},
		{
			Name:        "close_document",
			Description: "Release a document. Documents are opened per call and never held, so this always succeeds.",
			Schema: schema(map[string]any{
				"filename": str("document to release"),
			}, "filename"),
			Handler: s.closeDocument,
		},
		{
			Name:        "merge_documents",
			Description: "Merge the text content of several documents into a new one, page breaks between sources. Text, basic formatting and alignment carry over; images and section geometry do not.",
			Schema: schema(map[string]any{
				"target_filename":  str("document to create"),
				"source_filenames": arr("documents to merge, in order", str("source document name")),
			}, "target_filename", "source_filenames"),
			Handler: s.mergeDocuments,
		},
		{
			Name:        "save_document_as",
			Description: "Save a document under a new name or format (docx, txt in process; pdf, doc, html via the LibreOffice backend).",
			Schema: schema(map[string]any{
				"filename":        str("source document"),
				"output_filename": str("target file name"),
				"format":          str("target format: docx, doc, pdf, txt or html; defaults to the output extension"),
			}, "filename", "output_filename"),
			Handler: s.saveDocumentAs,
		},
		{
			Name:        "save_document_as_pdf",
			Description: "Convert a document to PDF via the LibreOffice backend and verify the result is readable.",
			Schema: schema(map[string]any{
				"filename":        str("source document"),
				"output_filename": str("target PDF name; defaults to the source name with .pdf"),
			}, "filename"),
			Handler: s.saveDocumentAsPDF,
		},
		{
			Name:        "compare_documents",
			Description: "Compare the plain text of two documents line by line and return the diff.",
			Schema: schema(map[string]any{
				"filename":       str("first document"),
				"other_filename": str("second document"),
			}, "filename", "other_filename"),
			Handler: s.compareDocuments,
		},
		{
			Name:        "document_history",
			Description: "List the recent recorded operations for a document, newest first.",
			Schema: schema(map[string]any{
				"filename": str("document to look up"),
				"limit":    num("maximum entries to return, default 50"),
			}, "filename"),
			Handler: s.documentHistory,
		},
	}
}

func (s *Service) createEmptyTxt(_ context.Context, args Args) Result {
	name := args.String("filename")
	if name == "" {
		return failf(docedit.KindInvalidParameter, "filename is required")
	}
	if !strings.HasSuffix(strings.ToLower(name), ".txt") {
		name += ".txt"
	}
	path, err := s.Resolver.Resolve(name)
	if err != nil {
		return failf(docedit.KindInvalidParameter, "%s", err.Error())
	}
	if _, err := os.Stat(path); err == nil {
		return failf(docedit.KindDuplicateName, "file %q already exists", path)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return failf(docedit.KindIO, "create file: %s", err.Error())
	}
	res := success("created empty text file %s", path)
	s.record(path, "create_empty_txt", res)
	return res
}

func (s *Service) createWordDocument(_ context.Context, args Args) Result {
	path, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	unlock := s.Locker.Lock(path)
	defer unlock()

	doc := docx.New()
	if title := args.String("title"); title != "" {
		p := doc.AddParagraph()
		p.AddRun(title)
		p.SetStyleID("Title")
	}
	if err := doc.SaveAs(path); err != nil {
		return failf(docedit.KindIO, "save new document: %s", err.Error())
	}
	res := success("created document %s", path)
	s.record(path, "create_word_document", res)
	return res
}

func (s *Service) openAndRead(_ context.Context, args Args) Result {
	return s.withDocumentRead("open_and_read_word_document", args, func(doc *docx.Document) (Result, error) {
		listing := docedit.Describe(doc)
		return successData(listing, "read %s", doc.Path()), nil
	})
}

func (s *Service) closeDocument(_ context.Context, args Args) Result {
	path, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	return success("document %s is not held open between calls; nothing to release", path)
}

func (s *Service) mergeDocuments(_ context.Context, args Args) Result {
	target, err := s.resolveDocx(args, "target_filename")
	if err != nil {
		return failure(err)
	}
	names := args.StringList("source_filenames")
	if len(names) == 0 {
		return failf(docedit.KindInvalidParameter, "source_filenames must name at least one document")
	}

	var sources []*docx.Document
	for _, name := range names {
		path, rerr := s.Resolver.Resolve(ensureExt(name, ".docx"))
		if rerr != nil {
			return failf(docedit.KindInvalidParameter, "%s", rerr.Error())
		}
		src, oerr := docx.Open(path)
		if oerr != nil {
			return failf(docedit.KindNotFound, "open source %q: %s", path, oerr.Error())
		}
		sources = append(sources, src)
	}

	unlock := s.Locker.Lock(target)
	defer unlock()

	dst := docx.New()
	if err := docedit.MergeDocuments(dst, sources); err != nil {
		return failure(err)
	}
	if err := dst.SaveAs(target); err != nil {
		return failf(docedit.KindIO, "save merged document: %s", err.Error())
	}
	res := success("merged %d documents into %s", len(sources), target)
	s.record(target, "merge_documents", res)
	return res
}

var saveFormats = map[string]bool{
	"docx": true, "doc": true, "pdf": true, "txt": true, "html": true,
}

func (s *Service) saveDocumentAs(ctx context.Context, args Args) Result {
	src, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	outName := args.String("output_filename")
	if outName == "" {
		return failf(docedit.KindInvalidParameter, "output_filename is required")
	}
	format := strings.ToLower(args.String("format"))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(outName)), ".")
	}
	if !saveFormats[format] {
		return failf(docedit.KindInvalidParameter, "unsupported output format %q (want docx, doc, pdf, txt or html)", format)
	}
	outName = ensureExt(outName, "."+format)
	out, rerr := s.Resolver.Resolve(outName)
	if rerr != nil {
		return failf(docedit.KindInvalidParameter, "%s", rerr.Error())
	}

	unlock := s.Locker.Lock(src)
	defer unlock()

	switch format {
	case "docx":
		doc, oerr := docx.Open(src)
		if oerr != nil {
			return failf(docedit.KindNotFound, "open document %q: %s", src, oerr.Error())
		}
		if serr := doc.SaveAs(out); serr != nil {
			return failf(docedit.KindIO, "save copy: %s", serr.Error())
		}
	case "txt":
		doc, oerr := docx.Open(src)
		if oerr != nil {
			return failf(docedit.KindNotFound, "open document %q: %s", src, oerr.Error())
		}
		if werr := os.WriteFile(out, []byte(doc.PlainText()), 0o644); werr != nil {
			return failf(docedit.KindIO, "write text file: %s", werr.Error())
		}
	default:
		if !s.Soffice.Available() {
			return failf(docedit.KindMissingDependency, "conversion to %s needs the LibreOffice backend, which was not found", format)
		}
		if cerr := s.Soffice.Convert(ctx, src, out, format); cerr != nil {
			return failf(docedit.KindExternalProcess, "%s", cerr.Error())
		}
	}
	res := success("saved %s as %s (%s)", src, out, format)
	s.record(src, "save_document_as", res)
	return res
}

func (s *Service) saveDocumentAsPDF(ctx context.Context, args Args) Result {
	src, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	outName := args.String("output_filename")
	if outName == "" {
		outName = strings.TrimSuffix(filepath.Base(src), ".docx") + ".pdf"
	}
	outName = ensureExt(outName, ".pdf")
	out, rerr := s.Resolver.Resolve(outName)
	if rerr != nil {
		return failf(docedit.KindInvalidParameter, "%s", rerr.Error())
	}
	if !s.Soffice.Available() {
		return failf(docedit.KindMissingDependency, "PDF conversion needs the LibreOffice backend, which was not found")
	}

	unlock := s.Locker.Lock(src)
	defer unlock()

	if cerr := s.Soffice.Convert(ctx, src, out, "pdf"); cerr != nil {
		return failf(docedit.KindExternalProcess, "%s", cerr.Error())
	}
	pages, verr := automation.VerifyPDF(out)
	if verr != nil {
		return failf(docedit.KindExternalProcess, "converted PDF failed verification: %s", verr.Error())
	}
	res := success("saved %s as %s (%d pages)", src, out, pages)
	s.record(src, "save_document_as_pdf", res)
	return res
}

func (s *Service) compareDocuments(_ context.Context, args Args) Result {
	left, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	right, err := s.resolveDocx(args, "other_filename")
	if err != nil {
		return failure(err)
	}
	leftDoc, lerr := docx.Open(left)
	if lerr != nil {
		return failf(docedit.KindNotFound, "open document %q: %s", left, lerr.Error())
	}
	rightDoc, rerr := docx.Open(right)
	if rerr != nil {
		return failf(docedit.KindNotFound, "open document %q: %s", right, rerr.Error())
	}
	diff, ins, del := compare.Diff(leftDoc.PlainText(), rightDoc.PlainText())
	return successData(diff, "%s", compare.Summary(ins, del))
}

func (s *Service) documentHistory(_ context.Context, args Args) Result {
	path, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	entries, herr := s.History.List(path, args.Int("limit", 50))
	if herr != nil {
		return failf(docedit.KindMissingDependency, "%s", herr.Error())
	}
	return successData(entries, "%d operations recorded for %s", len(entries), path)
}

func ensureExt(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}
