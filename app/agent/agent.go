// Package agent assembles the bounded instruction+context prompt for a
// chat turn. It applies the history and chunk limits decided upstream and
// does no token counting or truncation of its own: an oversized prompt is
// the model client's problem.
package agent

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"legalmind/types"
)

// MaxHistoryMessages is how much of the transcript tail the prompt carries.
const MaxHistoryMessages = 6

const promptTemplate = `You are a professional legal AI assistant specializing in document analysis. You're helping with: "%s"

DOCUMENT CONTEXT:
%s

CONVERSATION HISTORY:
%s

USER QUESTION: %s

CORE INSTRUCTIONS:
1. **Response Style:**
   - Be friendly, professional, and conversational
   - Use clear, accessible language (avoid excessive legal jargon)
   - Keep responses concise but comprehensive
   - Use markdown formatting for better readability

2. **For Greetings/General Questions:**
   - Give warm, brief responses (1-2 sentences)
   - Offer to help with document-specific questions
   - Example: "Hello! I'm here to help you understand this document. What would you like to know?"

3. **For Document Questions:**
   - Provide accurate, specific answers based ONLY on the document content
   - Reference relevant sections when applicable
   - Use bullet points or numbered lists for clarity
   - Include direct quotes from the document when helpful
   - If information is unclear or missing, state this honestly

4. **Response Guidelines:**
   - **Length:** 50-150 words for simple questions, up to 300 words for complex analysis
   - **Accuracy:** Only provide information that's explicitly stated in the document
   - **Clarity:** Break down complex legal concepts into understandable terms
   - **Helpfulness:** Always offer to elaborate or answer follow-up questions

5. **What NOT to do:**
   - Don't make assumptions beyond what's in the document
   - Don't provide legal advice (only analysis of what's written)
   - Don't add information not present in the document
   - Don't give overly long responses unless specifically requested

6. **Markdown Formatting:**
   - Use **bold** for important terms
   - Use bullet points for lists
   - Use ` + "`code blocks`" + ` for specific clauses or terms
   - Use > blockquotes for direct document excerpts

Remember: Your goal is to help the user understand their document better, not to provide legal advice.

Response:`

// BuildPrompt renders the chat-turn prompt: the fixed instruction block,
// the document name, the relevant chunks as [SECTIONTYPE] lines, and the
// last MaxHistoryMessages transcript messages oldest-first.
func BuildPrompt(query string, documentContext *types.DocumentContext, history []types.ChatMessage, relevantChunks []types.Chunk) string {
	recent := history
	if len(recent) > MaxHistoryMessages {
		recent = recent[len(recent)-MaxHistoryMessages:]
	}
	historyLines := make([]string, 0, len(recent))
	for _, msg := range recent {
		role := "Assistant"
		if msg.Role == types.RoleUser {
			role = "User"
		}
		historyLines = append(historyLines, fmt.Sprintf("%s: %s", role, msg.Content))
	}

	contextLines := make([]string, 0, len(relevantChunks))
	for _, chunk := range relevantChunks {
		contextLines = append(contextLines, fmt.Sprintf("[%s] %s", strings.ToUpper(string(chunk.SectionType)), chunk.Text))
	}

	return fmt.Sprintf(promptTemplate,
		documentContext.DocumentName,
		strings.Join(contextLines, "\n\n"),
		strings.Join(historyLines, "\n"),
		query,
	)
}

// EstimateTokens approximates the token count of text for chat metadata
// when the provider reply carries no usage count.
func EstimateTokens(text string) (int, error) {
	enc, err := tiktoken.EncodingForModel("gpt-3.5-turbo")
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}
