package docx

import "strings"

// ByName looks up a style by its display name (w:name val), case
// sensitively, which is how callers address styles.
func (s *Styles) ByName(name string) *Style {
	for _, st := range s.Items {
		if st.NameVal() == name {
			return st
		}
	}
	return nil
}

// ByID looks up a style by style id.
func (s *Styles) ByID(id string) *Style {
	for _, st := range s.Items {
		if st.StyleID == id {
			return st
		}
	}
	return nil
}

// StyleIDForName returns the style id for a display name, falling back to
// the name itself when the style table has no entry. Paragraph style
// references use ids, not names.
func (s *Styles) StyleIDForName(name string) string {
	if st := s.ByName(name); st != nil {
		return st.StyleID
	}
	return name
}

// MakeStyleID derives a style id from a display name the same way word
// processors do: drop the spaces.
func MakeStyleID(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

// Add appends a style to the table.
func (s *Styles) Add(st *Style) {
	s.Items = append(s.Items, st)
}

// Remove drops the style with the given display name. Returns false when no
// such style exists.
func (s *Styles) Remove(name string) bool {
	for i, st := range s.Items {
		if st.NameVal() == name {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}
