package crap

// DefaultJunk are the OS generated names reported in JunkFiles mode.
var DefaultJunk = []string{
	".DS_Store",
	".fseventsd",
	".Spotlight-V100",
	".TemporaryItems",
	"desktop.ini",
	"Thumbs.db",
}

// JunkSet matches exact basenames.
type JunkSet struct {
	names []string
	index map[string]struct{}
}

// NewJunkSet returns DefaultJunk followed by extra, without duplicates.
func NewJunkSet(extra ...string) *JunkSet {
	s := &JunkSet{index: make(map[string]struct{})}
	for _, n := range append(append([]string{}, DefaultJunk...), extra...) {
		if n == "" {
			continue
		}
		if _, ok := s.index[n]; ok {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
	}
	return s
}

// Match reports whether name is junk.
func (s *JunkSet) Match(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the names in order.
func (s *JunkSet) Names() []string {
	return append([]string(nil), s.names...)
}
