package extfile

import "strings"

// Extension returns the text after the last '.' of the name, e.g. "gz" for
// "backup.tar.gz". It is empty for directories, for names without a '.' and
// for names ending in '.'.
func (r FileRef) Extension() string {
	if r.IsDir() {
		return ""
	}
	return extension(r.Name(), strings.LastIndexByte)
}

// CompoundExtension returns the text after the first '.' of the name, e.g.
// "tar.gz" for "backup.tar.gz". The empty cases match Extension.
func (r FileRef) CompoundExtension() string {
	if r.IsDir() {
		return ""
	}
	return extension(r.Name(), strings.IndexByte)
}

// BaseName returns the name without its extension, or without its compound
// extension when compound is set. Directories return the full name.
func (r FileRef) BaseName(compound bool) string {
	ext := r.Extension()
	if compound {
		ext = r.CompoundExtension()
	}
	if ext == "" {
		return r.Name()
	}
	return strings.TrimSuffix(r.Name(), "."+ext)
}

func extension(name string, index func(string, byte) int) string {
	i := index(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}
