package services

// systemPrompt frames the model as a macro analyst. It is the first
// message of every generation call.
const systemPrompt = "You are a Senior Macroeconomic Analyst. " +
	"You answer questions about Federal Reserve FOMC meeting minutes using " +
	"only the context provided. If the context does not contain the answer, " +
	"say so plainly instead of guessing."

// answerPromptTemplate is the user message for a single question. The
// model must state exactly one sentiment label so the caller can parse it.
const answerPromptTemplate = `Context from the Fed minutes:
%s

Question: %s

Task:
1. Summarize what the minutes say that is relevant to the question.
2. Classify the overall sentiment as strictly HAWKISH, DOVISH, or NEUTRAL.
3. Quote the specific sentence from the context that best supports your classification.`

// noContextAnswer is returned without calling the model when retrieval
// produced nothing to condition on.
const noContextAnswer = "I don't have any Fed minutes indexed yet, so I can't answer that. " +
	"Run an ingestion first, then ask again."
