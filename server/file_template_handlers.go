package server

import (
	"embed"
	"html/template"
	"io/fs"
	"sync"
)

//go:embed templates/*
var templateFiles embed.FS

// The embedded tree never changes at runtime, so the sub filesystem is
// resolved once.
var templateFS = sync.OnceValue(func() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
})

func TemplateFilesFS() fs.FS {
	return templateFS()
}

// ParseTemplate parses one screen template from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	content, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	return template.New(name).Parse(string(content))
}
