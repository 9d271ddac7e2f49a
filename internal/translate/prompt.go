package translate

import "fmt"

// SystemPrompt returns the instruction given to LLM-backed engines.
func SystemPrompt(sourceLocale string, target Locale) string {
	return fmt.Sprintf(
		"You are a professional translator. Translate the user's text from %s to %s. "+
			"Keep line breaks, numbering and timestamps exactly where they are. "+
			"Respond with ONLY the translated text, without quotes or commentary.",
		Locale(sourceLocale).Name(), target.Name(),
	)
}
