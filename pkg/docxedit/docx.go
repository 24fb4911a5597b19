package docxedit

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// DocumentPart is the archive member holding the document body
const DocumentPart = "word/document.xml"

// Package is an opened DOCX archive. It supplies the document body as a
// string and writes the archive back with a replacement body, copying every
// other member unchanged.
type Package struct {
	reader *zip.Reader
	Parts  map[string]*zip.File

	path     string
	body     string
	replaced bool
}

// NewPackage reads a DOCX archive
func NewPackage(r io.ReaderAt, size int64) (*Package, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, NewDocumentError("open", "", fmt.Errorf("failed to read zip file: %w", err))
	}

	p := &Package{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		p.Parts[file.Name] = file
	}

	if _, ok := p.Parts[DocumentPart]; !ok {
		return nil, NewDocumentError("open", "", fmt.Errorf("not a valid DOCX file: missing %s", DocumentPart))
	}

	return p, nil
}

// OpenPackage reads a DOCX archive from disk
func OpenPackage(path string) (*Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}

	p, err := NewPackage(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		var docErr *DocumentError
		if errors.As(err, &docErr) {
			docErr.Path = path
		}
		return nil, err
	}
	p.path = path
	return p, nil
}

// Path returns the file the package was opened from, if any
func (p *Package) Path() string {
	return p.path
}

// DocumentXML returns the document body, including any replacement set with SetDocumentXML
func (p *Package) DocumentXML() (string, error) {
	if p.replaced {
		return p.body, nil
	}
	content, err := p.GetPart(DocumentPart)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Document returns an editable document over the body
func (p *Package) Document() (*Document, error) {
	body, err := p.DocumentXML()
	if err != nil {
		return nil, err
	}
	return New(body), nil
}

// SetDocumentXML replaces the body written by Write and Save
func (p *Package) SetDocumentXML(body string) {
	p.body = body
	p.replaced = true
}

// GetPart retrieves the content of a specific part
func (p *Package) GetPart(partName string) ([]byte, error) {
	file, ok := p.Parts[partName]
	if !ok {
		return nil, NewDocumentError("read", p.path, fmt.Errorf("part %s not found", partName))
	}

	rc, err := file.Open()
	if err != nil {
		return nil, NewDocumentError("read", p.path, fmt.Errorf("failed to open part %s: %w", partName, err))
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, NewDocumentError("read", p.path, fmt.Errorf("failed to read part %s: %w", partName, err))
	}

	return content, nil
}

// ListParts returns the names of all parts, sorted
func (p *Package) ListParts() []string {
	parts := make([]string, 0, len(p.Parts))
	for name := range p.Parts {
		parts = append(parts, name)
	}
	sort.Strings(parts)
	return parts
}

// Write writes the archive to w. Members keep their order and compressed
// data; only the document body is re-encoded when it was replaced.
func (p *Package) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, file := range p.reader.File {
		if file.Name != DocumentPart || !p.replaced {
			if err := zw.Copy(file); err != nil {
				return NewDocumentError("write", p.path, fmt.Errorf("failed to copy %s: %w", file.Name, err))
			}
			continue
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     file.Name,
			Method:   zip.Deflate,
			Modified: file.Modified,
		})
		if err != nil {
			return NewDocumentError("write", p.path, fmt.Errorf("failed to create %s: %w", file.Name, err))
		}
		if _, err := io.WriteString(fw, p.body); err != nil {
			return NewDocumentError("write", p.path, fmt.Errorf("failed to write %s: %w", file.Name, err))
		}
	}

	if err := zw.Close(); err != nil {
		return NewDocumentError("write", p.path, err)
	}
	return nil
}

// Save writes the archive to path through a temporary file in the same
// directory, so a failed write never leaves a truncated document behind.
func (p *Package) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".docxedit-*")
	if err != nil {
		return NewDocumentError("save", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := p.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	// Temp files are created 0600; keep the mode of the file being replaced
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return NewDocumentError("save", path, err)
	}
	if err := tmp.Close(); err != nil {
		return NewDocumentError("save", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return NewDocumentError("save", path, err)
	}

	GetLogger().WithFields(Fields{
		"path":     path,
		"replaced": p.replaced,
	}).Debug("Saved package")
	return nil
}
