package httphandler

import (
	"archive/zip"
	"bytes"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/kavyapatel/portfolio/internal/adapter/driving/web"
)

// readmeEntry is the README.md written into the source archive.
const readmeEntry = `# Portfolio

A personal portfolio backend with an interactive dashboard.

## Features

- Project, skill, testimonial, timeline, stat, and achievement APIs
- Contact form with owner notification and auto-reply emails
- Social activity feed from GitHub public events
- Self-seeding SQLite database

## Running

1. Copy the environment template and fill in your values:

       cp .env.example .env

2. Start the server:

       go run ./cmd/portfolio

The API listens on 127.0.0.1:8080 by default.
`

// envExampleEntry is the .env.example written into the source archive.
const envExampleEntry = `# Environment Variables Template
PORTFOLIO_LISTEN_ADDR=127.0.0.1:8080
PORTFOLIO_DB_PATH=portfolio.db
PORTFOLIO_RESEND_API_KEY=your-resend-api-key
PORTFOLIO_OWNER_EMAIL=you@example.com
PORTFOLIO_GITHUB_USERNAME=your-github-username
`

// DownloadSource serves a zip archive of the site's pages, static assets, and
// setup files, built in memory per request.
func (h *Handler) DownloadSource(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	err := addFS(zw, web.PagesFS)
	if err == nil {
		err = addFS(zw, web.StaticFS)
	}
	if err == nil {
		err = addEntry(zw, "README.md", readmeEntry)
	}
	if err == nil {
		err = addEntry(zw, ".env.example", envExampleEntry)
	}
	if err == nil {
		err = zw.Close()
	}
	if err != nil {
		h.logger.Error("failed to build source archive", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-source.zip"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

// addFS copies every regular file from the embedded filesystem into the
// archive, preserving paths.
func addFS(zw *zip.Writer, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		entry, err := zw.Create(path)
		if err != nil {
			return err
		}
		_, err = entry.Write(data)
		return err
	})
}

func addEntry(zw *zip.Writer, name, content string) error {
	entry, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = entry.Write([]byte(content))
	return err
}
