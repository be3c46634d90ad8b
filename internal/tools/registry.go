package tools

// Definitions returns the full tool catalog in a stable order.
func (s *Service) Definitions() []Definition {
	var out []Definition
	out = append(out, s.fileTools()...)
	out = append(out, s.paragraphTools()...)
	out = append(out, s.tableTools()...)
	out = append(out, s.batchTools()...)
	out = append(out, s.structureTools()...)
	out = append(out, s.styleTools()...)
	out = append(out, s.advancedTools()...)
	return out
}

// Lookup finds a tool by name.
func (s *Service) Lookup(name string) (Definition, bool) {
	for _, def := range s.Definitions() {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
