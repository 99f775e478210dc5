package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"gorm.io/gorm"
)

// RoadmapCreditCost is deducted per generated roadmap.
const RoadmapCreditCost = 5

type RoadmapService struct {
	db         *gorm.DB
	credits    *CreditService
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewRoadmapService(db *gorm.DB, credits *CreditService, apiKey, apiURL, model string) *RoadmapService {
	return &RoadmapService{
		db:         db,
		credits:    credits,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *RoadmapService) IsAvailable() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const roadmapSystemPrompt = `You are a learning roadmap generator for university students. The user will name a topic and a duration in months. You must respond with ONLY valid JSON (no markdown, no code fences, no explanations) in the following format:

{
  "phases": [
    {
      "title": "Phase name",
      "duration": "e.g. 2 weeks",
      "description": "What this phase covers",
      "topics": ["topic 1", "topic 2"],
      "resources": [
        {"title": "Resource name", "url": "https://example.com"}
      ],
      "milestones": ["milestone 1"]
    }
  ]
}

Rules:
- Generate 3-6 phases that together fit the requested duration
- Every phase must have a title, a duration and at least one topic
- Resources must be real, well-known learning materials
- Return ONLY the JSON object, nothing else`

// Generate charges the student's credit ledger, asks the chat-completion
// API for a roadmap and persists the validated result. The charge happens
// before the call so a slow generation cannot be used to overdraw the
// balance; it is refunded if generation fails.
func (s *RoadmapService) Generate(userID uint, topic string, months int) (*models.Roadmap, error) {
	if !s.IsAvailable() {
		return nil, ErrAIUnavailable
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("topic is required")
	}
	if months <= 0 || months > 24 {
		return nil, errors.New("months must be between 1 and 24")
	}

	if _, err := s.credits.Spend(userID, RoadmapCreditCost, models.CreditActionRoadmap); err != nil {
		return nil, err
	}

	phases, err := s.generatePhases(topic, months)
	if err != nil {
		if _, refundErr := s.credits.Grant(userID, RoadmapCreditCost, models.CreditActionRefund); refundErr != nil {
			log.Printf("failed to refund roadmap credits for user %d: %v", userID, refundErr)
		}
		return nil, err
	}

	raw, err := json.Marshal(phases)
	if err != nil {
		return nil, err
	}

	roadmap := models.Roadmap{
		UserID: userID,
		Topic:  topic,
		Months: months,
		Phases: raw,
	}
	if err := s.db.Create(&roadmap).Error; err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (s *RoadmapService) ListByUser(userID uint) ([]models.Roadmap, error) {
	roadmaps := []models.Roadmap{}
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&roadmaps).Error
	if err != nil {
		return nil, err
	}
	return roadmaps, nil
}

func (s *RoadmapService) generatePhases(topic string, months int) ([]models.Phase, error) {
	prompt := fmt.Sprintf("Topic: %s\nDuration: %d months", topic, months)
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: roadmapSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from AI")
	}

	return ParsePhases(chatResp.Choices[0].Message.Content)
}

// ParsePhases decodes model output into the typed phase structure and
// rejects anything that does not satisfy the schema.
func ParsePhases(content string) ([]models.Phase, error) {
	content = cleanJSONContent(content)

	var payload struct {
		Phases []models.Phase `json:"phases"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("AI returned invalid JSON: %w", err)
	}

	if len(payload.Phases) == 0 {
		return nil, errors.New("roadmap must contain at least one phase")
	}
	for i, p := range payload.Phases {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("phase %d is missing a title", i+1)
		}
		if strings.TrimSpace(p.Duration) == "" {
			return nil, fmt.Errorf("phase %d is missing a duration", i+1)
		}
		if len(p.Topics) == 0 {
			return nil, fmt.Errorf("phase %d has no topics", i+1)
		}
	}
	return payload.Phases, nil
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
