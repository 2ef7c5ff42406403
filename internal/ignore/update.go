package ignore

// Outcome reports what Update did.
type Outcome struct {
	Created bool
	Added   []string
	Staged  bool
}

// Update creates or extends the work-tree .gitignore. A missing file is only
// created after confirmation and then receives defaults followed by patterns.
// When the file changed the user is asked whether to stage it.
func (r *Repository) Update(p *Prompter, defaults, patterns []string) (*Outcome, error) {
	file := r.IgnoreFile()
	out := &Outcome{}

	if !file.Exists() {
		if !p.Confirm("create", FileName, "file") {
			return out, nil
		}
		out.Created = true
		patterns = append(append([]string{}, defaults...), patterns...)
	}

	added, err := file.Append(patterns)
	if err != nil {
		return nil, err
	}
	out.Added = added
	if !out.Created && len(added) == 0 {
		return out, nil
	}

	if p.Confirm("add", FileName, "file to the index") {
		if err := r.Stage(); err != nil {
			return nil, err
		}
		out.Staged = true
	}
	return out, nil
}
