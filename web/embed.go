package web

import "embed"

// Templates embeds HTML templates.
//
//go:embed templates/**/*.html
var Templates embed.FS

// Static embeds static assets.
//
//go:embed static/**/*
var Static embed.FS

// Data embeds the pre-computed dashboard datasets.
//
//go:embed data/*.json
var Data embed.FS
