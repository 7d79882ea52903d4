package web

import "embed"

// StaticFS holds the embedded static assets (CSS, JS).
//
//go:embed static/*
var StaticFS embed.FS

// PagesFS holds the embedded HTML pages.
//
//go:embed pages/*
var PagesFS embed.FS
