// Package translation provides English glosses for generated Russian words
// using the OpenAI or Gemini APIs. Backend calls run behind a circuit
// breaker and results are cached in memory for the lifetime of a lookup.
package translation
