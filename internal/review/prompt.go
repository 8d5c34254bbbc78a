package review

import (
	"fmt"
	"strings"
)

// BuildDescriptionPrompt embeds the project description and README for the
// intake stage. Everything later in the conversation builds on this turn.
func BuildDescriptionPrompt(description, readme string) string {
	var b strings.Builder
	b.WriteString("This is a description of the project:\n\n")
	b.WriteString(description)
	b.WriteString("\n\nThis is the provided README.md file:\n\n")
	b.WriteString(readme)
	b.WriteString("\n\nUse this to understand the project's purpose; it is context for everything that follows.")
	return b.String()
}

// BuildStructurePrompt embeds the rendered directory tree for the structure
// analysis stage.
func BuildStructurePrompt(tree string) string {
	var b strings.Builder
	b.WriteString("Here is the project's folder structure:\n\n")
	b.WriteString(tree)
	b.WriteString("\n\nComment on any organization or architecture issues.")
	return b.String()
}

// BuildFilePrompt builds the per-file review request. ext arrives with its
// leading dot and is used as the code-fence language tag.
func BuildFilePrompt(relPath, ext, code string) string {
	lang := strings.TrimPrefix(ext, ".")
	var b strings.Builder
	b.WriteString("You are a senior code reviewer. Review the following file for:\n")
	b.WriteString("- Bugs\n- Security issues\n- Logic errors\n- Style issues\n- Maintainability\n\n")
	fmt.Fprintf(&b, "File: %s\n", relPath)
	fmt.Fprintf(&b, "Code:\n```%s\n%s\n```", lang, code)
	return b.String()
}

// SummaryPrompt asks for the project-wide synthesis of all prior reviews.
func SummaryPrompt() string {
	return `Based on your previous reviews of each file provided in the prior prompts, provide a detailed project-wide summary. Include:
1. Any critical bugs
2. Potential security issues
3. Overall architectural problems
4. Logic or flow issues
5. Best practice violations
Avoid repeating raw code. Be concise and actionable.`
}

// Truncate caps text at max characters. Content within the cap is returned
// unmodified; anything longer is cut at exactly max characters to bound
// payload growth on top of an already-accumulating transcript.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
