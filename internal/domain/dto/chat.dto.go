package dto

// ChatRequest is the body of POST /chat. Either field carries the user query.
type ChatRequest struct {
	Query   string `json:"query,omitempty"`
	Message string `json:"message,omitempty"`
}

// Text returns the query, falling back to message.
func (r ChatRequest) Text() string {
	if r.Query != "" {
		return r.Query
	}
	return r.Message
}

// GenerateRequest is the body of POST /gemini/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResult is the backend envelope for generated answers:
// {success:true, data} on success, {success:false, message, error} on failure.
type ChatResult struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ChatAnswer is what the session controller reads back from the "chat" resource.
// Simulated replies fill Answer; a live backend replies with the ChatResult envelope,
// so both shapes decode into the same struct.
type ChatAnswer struct {
	Answer  string `json:"answer,omitempty"`
	Success bool   `json:"success,omitempty"`
	Data    string `json:"data,omitempty"`
}

// Text returns the answer text regardless of which shape produced it.
func (a ChatAnswer) Text() string {
	if a.Answer != "" {
		return a.Answer
	}
	if a.Success {
		return a.Data
	}
	return ""
}
