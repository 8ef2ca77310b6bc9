package client

// Accessors satisfying the list-view Item interface.

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h House) EntityID() uint { return h.ID }

func (h House) SearchFields() (string, string) {
	return h.Name, deref(h.Description)
}

func (c Cabinet) EntityID() uint { return c.ID }

func (c Cabinet) SearchFields() (string, string) {
	return c.Name, deref(c.Description)
}

func (p Product) EntityID() uint { return p.ID }

func (p Product) SearchFields() (string, string) {
	return p.Name, deref(p.Description)
}
