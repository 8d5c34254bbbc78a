// Package redact scrubs secrets from file content before it is embedded in a
// chat prompt. Detection is heuristic regex matching for common key, token,
// and credential shapes; path policies can withhold whole files such as .env.
package redact
