// Package gemini provides an implementation of the generation.Completer
// interface that uses Google's Gemini API through the google.golang.org/genai
// client library.
//
// This package is an infrastructure adapter: it translates the pipeline's
// provider-neutral generation.Request into a GenerateContent call and the
// response back into plain text, without exposing genai types to the rest of
// the application.
//
// Error handling:
//   - Transport and API errors are returned as-is so the generation.Caller can
//     retry them
//   - Responses stopped by safety filters map to generation.ErrContentBlocked
//   - Responses without any text map to generation.ErrEmptyResponse
package gemini
