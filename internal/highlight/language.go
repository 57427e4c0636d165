// Package highlight turns a buffer line into styled spans for rendering,
// using Chroma as the tokenizer/style source. Unlike an ANSI-round-trip
// highlighter, it walks Chroma's token stream directly and maps each token
// straight onto a renderpipeline.StyleUSSpan, so no terminal escape
// sequences are ever parsed back out.
package highlight

import (
	"path/filepath"
	"strings"
)

// languageByExtension maps common file extensions to Chroma lexer names.
var languageByExtension = map[string]string{
	".go":         "go",
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".jsx":        "jsx",
	".tsx":        "tsx",
	".java":       "java",
	".c":          "c",
	".cpp":        "cpp",
	".cc":         "cpp",
	".h":          "c",
	".hpp":        "cpp",
	".cs":         "csharp",
	".rb":         "ruby",
	".php":        "php",
	".rs":         "rust",
	".swift":      "swift",
	".kt":         "kotlin",
	".scala":      "scala",
	".sh":         "bash",
	".bash":       "bash",
	".zsh":        "zsh",
	".fish":       "fish",
	".ps1":        "powershell",
	".r":          "r",
	".sql":        "sql",
	".html":       "html",
	".htm":        "html",
	".xml":        "xml",
	".css":        "css",
	".scss":       "scss",
	".sass":       "sass",
	".less":       "less",
	".json":       "json",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".ini":        "ini",
	".conf":       "nginx",
	".md":         "markdown",
	".markdown":   "markdown",
	".tex":        "tex",
	".vim":        "vim",
	".lua":        "lua",
	".perl":       "perl",
	".pl":         "perl",
	".dockerfile": "docker",
	".proto":      "protobuf",
}

// DetectLanguage returns the Chroma lexer name for path's extension, or
// filename for extensionless well-known files, falling back to "" (no
// lexer, so the caller treats the line as plain text) when nothing matches.
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}

	switch strings.ToLower(filepath.Base(path)) {
	case "dockerfile":
		return "docker"
	case "makefile":
		return "make"
	case "gemfile", "rakefile":
		return "ruby"
	}

	return ""
}
