package qpath

// Stat returns metadata for exactly the wrapped path, with Level 0,
// Name and RelativePath set to the basename and AbsolutePath set to the
// path as supplied.
func (p *PathEntry) Stat() (*EntryMetadata, error) {
	p.logger.Verbose("stat %s", p.path)
	info, err := p.fs.Stat(p.path)
	if err != nil {
		return nil, newPathError(OpStat, p.path, err)
	}
	return &EntryMetadata{
		Info:         info,
		Level:        0,
		Name:         p.Basename(),
		RelativePath: p.Basename(),
		AbsolutePath: p.path,
	}, nil
}

// ReadStats collects metadata for every entry beneath the wrapped path.
//
// The result is a depth-first pre-order flattening: a directory's own record
// precedes its descendants', and siblings keep the backend's listing order.
// The first stat or listing failure aborts the scan and no partial result
// is returned. An empty directory yields an empty, non-nil slice.
func (p *PathEntry) ReadStats() ([]EntryMetadata, error) {
	stats := make([]EntryMetadata, 0)
	if err := p.collect(0, "", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (p *PathEntry) collect(level int, prefix string, stats *[]EntryMetadata) error {
	dir := p.ops.Join(p.path, prefix)
	p.logger.Verbose("readdir %s (level %d)", dir, level)
	names, err := p.fs.ReadDirNames(dir)
	if err != nil {
		return newPathError(OpReadDir, dir, err)
	}

	for _, name := range names {
		relativePath := p.ops.Join(prefix, name)
		absolutePath := p.ops.Join(p.path, relativePath)

		info, err := p.fs.Stat(absolutePath)
		if err != nil {
			return newPathError(OpStat, absolutePath, err)
		}

		*stats = append(*stats, EntryMetadata{
			Info:         info,
			Level:        level,
			Name:         name,
			RelativePath: relativePath,
			AbsolutePath: absolutePath,
		})

		if info.IsDir() {
			if err := p.collect(level+1, relativePath, stats); err != nil {
				return err
			}
		}
	}
	return nil
}
