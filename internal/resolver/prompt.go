package resolver

import (
	"fmt"

	"github.com/lingofeed/lingofeed/internal/feed"
)

// Instruction builders are deterministic: the same key and source text
// always produce the same provider instruction.

func factContentInstruction(language string, level feed.Level, sourceText string) string {
	return fmt.Sprintf(`Translate and simplify this sentence into %s at a %s level. Keep the same meaning. Output only the translated sentence, with no extra text or quotation marks.
Sentence: %q`, language, level, sourceText)
}

func wordAnalysisInstruction(word, sourceLanguage, targetLanguage string) string {
	return fmt.Sprintf(`Analyze the %[1]s word %[3]q.
The user's native language is %[2]s.
Provide the response ONLY as a valid JSON object with no other text, explanations, or markdown formatting.
The JSON object must have this exact structure:
{
  "rootWord": "The dictionary (root) form of the word in %[1]s.",
  "meanings": [
    {
      "translation": "A specific meaning of the word in %[2]s.",
      "partOfSpeech": "The part of speech for this meaning in %[1]s (e.g., 'verb', 'noun', 'adjective').",
      "exampleSourceLang": "An example sentence in %[1]s demonstrating this specific meaning.",
      "exampleTargetLang": "The %[2]s translation of the example sentence."
    }
  ]
}
Provide 2-3 meanings. Ensure the example sentences are practical and common.`, sourceLanguage, targetLanguage, word)
}
