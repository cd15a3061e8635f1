package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"support-widget/internal/domain/dto"
	repocontants "support-widget/internal/domain/interfaces/repository/contants"
	"support-widget/internal/metrics"
)

// NoMatchAnswer is returned when no canned entry matches an offline query.
const NoMatchAnswer = "I'm sorry, I don't have information on that topic. Please contact us for more details."

// simulateChat answers a chat query while the backend is considered unreachable.
// It first tries the dedicated answer endpoint, then the canned responses.
// It always resolves to an answer.
func (c *Client) simulateChat(ctx context.Context, method string, body any) any {
	if method != http.MethodPost {
		return nil
	}

	var req dto.ChatRequest
	if raw, err := json.Marshal(body); err == nil {
		_ = json.Unmarshal(raw, &req)
	}
	query := req.Text()
	if query == "" {
		return nil
	}

	if answer, ok := c.askChatEndpoint(ctx, query); ok {
		metrics.ChatFallbacks.WithLabelValues("endpoint").Inc()
		return dto.ChatAnswer{Answer: answer}
	}
	return dto.ChatAnswer{Answer: c.cannedAnswer(query)}
}

func (c *Client) askChatEndpoint(ctx context.Context, query string) (string, bool) {
	if c.ChatURL == "" {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, c.ChatTimeout)
	defer cancel()

	payload, err := json.Marshal(dto.ChatRequest{Query: query})
	if err != nil {
		return "", false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ChatURL, bytes.NewReader(payload))
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HttpClient.Do(req)
	if err != nil {
		c.Logger.Warn(fmt.Sprintf("Error calling chat API, falling back to local responses: %v", err))
		return "", false
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return "", false
	}

	var result dto.ChatResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return "", false
	}
	if !result.Success || result.Data == "" {
		return "", false
	}
	return result.Data, true
}

// cannedAnswer returns the answer of the first stored entry whose question is
// contained in the query, compared case-insensitively, in stored order.
func (c *Client) cannedAnswer(query string) string {
	queryLower := strings.ToLower(query)

	for _, doc := range c.Store.Load(repocontants.LOCAL_CHAT_RESPONSES_COLLECTION) {
		question, _ := doc["question"].(string)
		question = strings.ToLower(question)
		if question == "" {
			continue
		}
		if strings.Contains(queryLower, question) {
			answer, _ := doc["answer"].(string)
			metrics.ChatFallbacks.WithLabelValues("canned").Inc()
			return answer
		}
	}

	metrics.ChatFallbacks.WithLabelValues("apology").Inc()
	return NoMatchAnswer
}
