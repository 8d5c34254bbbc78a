package redact

import (
	"path/filepath"
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

type pattern struct {
	name string
	re   *regexp.Regexp
}

// patterns are regex heuristics for secrets that must never leave the
// machine inside a review prompt.
var patterns = []pattern{
	{"api key assignment", regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`)},
	{"aws access key id", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"aws secret access key", regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`)},
	{"credential assignment", regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`)},
	{"bearer token", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"private key block", regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`)},
	{"github token", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`)},
	{"slack token", regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`)},
	{"anthropic api key", regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`)},
	{"openai api key", regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`)},
	{"hex secret assignment", regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`)},
}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, placeholder)
	}
	return result
}

// ShouldRedactPath checks if a file path matches any redaction path pattern.
func ShouldRedactPath(path string, pathPatterns []string) bool {
	for _, pat := range pathPatterns {
		if matched, err := filepath.Match(pat, path); err == nil && matched {
			return true
		}
		// Patterns like "**/.env" should also match on the bare file name
		trimmed := strings.TrimPrefix(pat, "**/")
		if trimmed != pat {
			if matched, err := filepath.Match(trimmed, filepath.Base(path)); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// FileContent prepares file content for inclusion in a review prompt:
// files matching a path policy are replaced wholesale, everything else is
// scrubbed for embedded secrets.
func FileContent(content, relPath string, pathPatterns []string) string {
	if ShouldRedactPath(relPath, pathPatterns) {
		return placeholder + " (file content withheld by path policy)\n"
	}
	return Secrets(content)
}
