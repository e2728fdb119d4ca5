// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package fonts describes the locally hosted font families and serves them.
package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

var ErrMissingFace = errors.New("font face file missing")

// Face is one weight/style of a family, stored as a single file
type Face struct {
	Path   string
	Weight int
	Style  string
}

// Family is a set of faces exposed to stylesheets through a CSS variable
type Family struct {
	Name     string
	Variable string
	Display  string
	Faces    []Face
}

// Gilroy is the site's primary typeface
var Gilroy = Family{
	Name:     "Gilroy",
	Variable: "--font-gilroy",
	Display:  "swap",
	Faces: []Face{
		{Path: "Gilroy-Light.ttf", Weight: 300, Style: "normal"},
		{Path: "Gilroy-Regular.ttf", Weight: 400, Style: "normal"},
		{Path: "Gilroy-Medium.ttf", Weight: 500, Style: "normal"},
		{Path: "Gilroy-SemiBold.ttf", Weight: 600, Style: "normal"},
		{Path: "Gilroy-Bold.ttf", Weight: 700, Style: "normal"},
		{Path: "Gilroy-ExtraBold.ttf", Weight: 800, Style: "normal"},
	},
}

// Stylesheet is the file name the family's CSS is served under
func (f Family) Stylesheet() string {
	return strings.ToLower(f.Name) + ".css"
}

// CSS renders @font-face rules for every face plus the :root variable.
// urlPrefix is prepended to each face path.
func (f Family) CSS(urlPrefix string) string {
	var b strings.Builder
	for _, face := range f.Faces {
		fmt.Fprintf(&b, "@font-face {\n")
		fmt.Fprintf(&b, "  font-family: '%s';\n", f.Name)
		fmt.Fprintf(&b, "  src: url('%s') format('%s');\n", urlPrefix+face.Path, format(face.Path))
		fmt.Fprintf(&b, "  font-weight: %d;\n", face.Weight)
		fmt.Fprintf(&b, "  font-style: %s;\n", face.Style)
		fmt.Fprintf(&b, "  font-display: %s;\n", f.Display)
		b.WriteString("}\n\n")
	}
	fmt.Fprintf(&b, ":root {\n  %s: '%s';\n}\n", f.Variable, f.Name)
	return b.String()
}

// Face returns the face stored in file name
func (f Family) Face(name string) (Face, bool) {
	for _, face := range f.Faces {
		if face.Path == name {
			return face, true
		}
	}
	return Face{}, false
}

// Verify checks every face file is present in fs and logs its size
func (f Family) Verify(fs afero.Fs) error {
	var missing []string
	for _, face := range f.Faces {
		info, err := fs.Stat(face.Path)
		if err != nil {
			missing = append(missing, face.Path)
			continue
		}
		slog.Info("font face ready",
			"family", f.Name,
			"weight", face.Weight,
			"file", face.Path,
			"size", humanize.Bytes(uint64(info.Size())),
		)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFace, strings.Join(missing, ", "))
	}
	return nil
}

// Handler serves the family's stylesheet and face files from fs.
// It expects to be mounted at prefix (e.g. "/fonts/") with the prefix
// already stripped; only files named by the family are served.
type Handler struct {
	family  Family
	fs      afero.Fs
	css     []byte
	modTime time.Time
}

func NewHandler(family Family, fs afero.Fs, prefix string) *Handler {
	return &Handler{
		family:  family,
		fs:      fs,
		css:     []byte(family.CSS(prefix)),
		modTime: time.Now(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)

	if name == h.family.Stylesheet() {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeContent(w, r, name, h.modTime, bytes.NewReader(h.css))
		return
	}

	if _, ok := h.family.Face(name); !ok {
		http.NotFound(w, r)
		return
	}

	file, err := h.fs.Open(name)
	if err != nil {
		slog.Error("failed to open font face", "file", name, "error", err)
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		slog.Error("failed to stat font face", "file", name, "error", err)
		http.Error(w, "font unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mimeType(name))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeContent(w, r, name, info.ModTime(), file)
}

func format(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".woff2":
		return "woff2"
	case ".woff":
		return "woff"
	case ".otf":
		return "opentype"
	}
	return "truetype"
}

func mimeType(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".woff2":
		return "font/woff2"
	case ".woff":
		return "font/woff"
	case ".otf":
		return "font/otf"
	}
	return "font/ttf"
}
