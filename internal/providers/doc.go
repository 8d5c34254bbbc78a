// Package providers implements the Chatter interface for each supported LLM
// provider.
//
// Supported providers: Ollama / LM Studio for local models (the default),
// OpenAI (GPT), Anthropic (Claude), and Google (Gemini).
//
// Unlike a one-shot completion client, Chat receives the entire ordered
// conversation transcript on every call; the provider holds no state between
// calls. All providers share a common retry helper with exponential back-off
// for rate limits and server errors. Base URLs live in a struct field so that
// tests can point providers at local httptest servers without making live API
// requests.
//
// Use [New] to obtain a Chatter by provider name and model string.
package providers
