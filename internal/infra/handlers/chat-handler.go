package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"support-widget/internal/domain/dto"
	Iservices "support-widget/internal/domain/interfaces/services"
	"support-widget/internal/infra/logger"
)

type ChatHandlers struct {
	Logger        *logger.Logger
	AnswerService Iservices.IAnswerService
}

func NewChatHandlers(logger *logger.Logger, answerService Iservices.IAnswerService) *ChatHandlers {
	return &ChatHandlers{Logger: logger, AnswerService: answerService}
}

// Chat answers {query} or {message} with {success:true, data}.
func (h *ChatHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	var body dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.answer(w, r, body.Text(), "Query or message is required")
}

// Generate answers a raw {prompt}.
func (h *ChatHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var body dto.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.answer(w, r, body.Prompt, "Prompt is required")
}

func (h *ChatHandlers) answer(w http.ResponseWriter, r *http.Request, prompt, missing string) {
	if strings.TrimSpace(prompt) == "" {
		writeError(w, http.StatusBadRequest, missing, nil)
		return
	}

	text, err := h.AnswerService.GenerateAnswer(r.Context(), prompt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating response", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ChatResult{Success: true, Data: text})
}
