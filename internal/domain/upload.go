package domain

// SelectedFile is the file currently chosen in an upload widget.
type SelectedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the file size in bytes.
func (f *SelectedFile) Size() int {
	if f == nil {
		return 0
	}
	return len(f.Data)
}
