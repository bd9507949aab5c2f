package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/Lalitdesh1/BurnFit/internal/logger"
	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

const (
	DefaultCoachModel = "gemini-3-pro-preview"
	DefaultFlashModel = "gemini-3-flash-preview"

	coachTemperature    = 0.7
	fixMyDayTemperature = 0.8
)

type Config struct {
	APIKey     string
	CoachModel string
	FlashModel string
	// Endpoint and HTTPClient override the public API, mainly for tests.
	Endpoint   string
	HTTPClient *http.Client
}

// Client implements the coaching, day-fixer, vision, and text-estimate
// capabilities against the Gemini API.
type Client struct {
	genai      *genai.Client
	coachModel string
	flashModel string
}

var (
	_ service.CoachingService = (*Client)(nil)
	_ service.DayFixer        = (*Client)(nil)
	_ service.VisionService   = (*Client)(nil)
	_ service.TextEstimator   = (*Client)(nil)
)

func New(ctx context.Context, cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	cc := &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		cc.HTTPOptions.BaseURL = strings.TrimRight(endpoint, "/") + "/"
	}
	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c := &Client{
		genai:      gc,
		coachModel: strings.TrimSpace(cfg.CoachModel),
		flashModel: strings.TrimSpace(cfg.FlashModel),
	}
	if c.coachModel == "" {
		c.coachModel = DefaultCoachModel
	}
	if c.flashModel == "" {
		c.flashModel = DefaultFlashModel
	}
	return c, nil
}

func (c *Client) Coach(ctx context.Context, req service.CoachRequest) (string, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, m := range req.History {
		// The API expects the conversation to open with a user turn.
		if len(contents) == 0 && m.Role != model.RoleUser {
			continue
		}
		contents = append(contents, textContent(apiRole(m.Role), m.Text))
	}
	contents = append(contents, textContent(genai.RoleUser, req.Message))

	resp, err := c.generate(ctx, c.coachModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: textContent("", coachInstruction(req.Profile, req.Stats)),
		Temperature:       genai.Ptr[float32](coachTemperature),
	})
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

func (c *Client) FixMyDay(ctx context.Context, p model.Profile, stats model.DailyStats) (string, error) {
	prompt := fmt.Sprintf("Based on your Google Health data and %s dietary preference: Intake %d, Burned %d, Goal %d. Give me one simple action or meal suggestion.",
		p.DietaryPreference, stats.Intake, stats.Burned, p.DailyTargetKcal)

	resp, err := c.generate(ctx, c.flashModel, []*genai.Content{textContent(genai.RoleUser, prompt)}, &genai.GenerateContentConfig{
		SystemInstruction: textContent("", fixMyDayInstruction(p)),
		Temperature:       genai.Ptr[float32](fixMyDayTemperature),
	})
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

type foodImageResult struct {
	FoodName          string  `json:"foodName"`
	EstimatedCalories float64 `json:"estimatedCalories"`
}

// AnalyzeFoodImage returns service.UnknownDish when the model answer cannot
// be parsed. Transport errors are returned as errors.
func (c *Client) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string, diet model.DietaryPreference) (model.FoodEstimate, error) {
	if len(image) == 0 {
		return model.FoodEstimate{}, fmt.Errorf("image is empty")
	}
	prompt := "Identify this food and estimate calories. Return JSON with 'foodName' and 'estimatedCalories'."
	if hint := dietHint(diet); hint != "" {
		prompt += " The user follows a " + hint + " diet; use that only as a hint when the dish is ambiguous."
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		},
	}}
	resp, err := c.generate(ctx, c.flashModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"foodName":          {Type: genai.TypeString},
				"estimatedCalories": {Type: genai.TypeNumber},
			},
			Required: []string{"foodName", "estimatedCalories"},
		},
	})
	if err != nil {
		return model.FoodEstimate{}, err
	}

	var parsed foodImageResult
	if err := decodeJSON(responseText(resp), &parsed); err != nil {
		logger.Warn("vision response unreadable", "err", err)
		return service.UnknownDish, nil
	}
	name := strings.TrimSpace(parsed.FoodName)
	if name == "" {
		name = service.UnknownDish.FoodName
	}
	return model.FoodEstimate{FoodName: name, EstimatedCalories: roundCalories(parsed.EstimatedCalories)}, nil
}

type textEstimateResult struct {
	EstimatedCalories float64 `json:"estimatedCalories"`
	ConfirmedFoodName string  `json:"confirmedFoodName"`
}

// EstimateCalories returns a zero estimate when the model answer cannot be
// parsed. Transport errors are returned as errors.
func (c *Client) EstimateCalories(ctx context.Context, description string, diet model.DietaryPreference) (model.TextEstimate, error) {
	prompt := fmt.Sprintf("Estimate calories for: %q. Return JSON with 'estimatedCalories' and 'confirmedFoodName'.", description)
	if hint := dietHint(diet); hint != "" {
		prompt += " The user follows a " + hint + " diet."
	}

	resp, err := c.generate(ctx, c.flashModel, []*genai.Content{textContent(genai.RoleUser, prompt)}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"estimatedCalories": {Type: genai.TypeNumber},
				"confirmedFoodName": {Type: genai.TypeString},
			},
			Required: []string{"estimatedCalories"},
		},
	})
	if err != nil {
		return model.TextEstimate{}, err
	}

	var parsed textEstimateResult
	if err := decodeJSON(responseText(resp), &parsed); err != nil {
		logger.Warn("text estimate response unreadable", "err", err)
		return model.TextEstimate{}, nil
	}
	return model.TextEstimate{
		EstimatedCalories: roundCalories(parsed.EstimatedCalories),
		ConfirmedFoodName: strings.TrimSpace(parsed.ConfirmedFoodName),
	}, nil
}

func (c *Client) generate(ctx context.Context, modelID string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	logger.Debug("gemini request", "model", modelID, "turns", len(contents))
	resp, err := c.genai.Models.GenerateContent(ctx, modelID, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate %s: %w", modelID, err)
	}
	return resp, nil
}

func textContent(role, text string) *genai.Content {
	return &genai.Content{
		Role:  role,
		Parts: []*genai.Part{genai.NewPartFromText(text)},
	}
}

func apiRole(r model.Role) string {
	if r == model.RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return strings.TrimSpace(resp.Text())
}

// decodeJSON reads the outermost JSON object in text, tolerating code fences
// or prose around it.
func decodeJSON(text string, out any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return fmt.Errorf("no JSON object in response")
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), out); err != nil {
		return fmt.Errorf("decode response JSON: %w", err)
	}
	return nil
}

func roundCalories(v float64) int {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
