package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vocalog/diary-api/internal/models"
)

const semanticSystemPrompt = `You are the semantic analyzer for short voice diary clips in Spanish.
You receive:
- transcript: what the person said (mostly Spanish, sometimes Spanglish)
- language: ISO language code if available
- signalFeatures: basic acoustic features (rms, peak, zcr, spectralCentroid)

Your job is to output a compact JSON object with:
- summary: 1-3 sentences summarizing what the person is expressing, in the same language as the transcript.
- topics: 2-5 short keywords (single words or very short phrases) capturing the main themes (e.g. "ansiedad", "trabajo", "familia", "salud", "agradecimiento").
- momentType: one of:
  - "check-in" (estado general / como se siente)
  - "desahogo" (queja, descarga emocional)
  - "crisis" (angustia intensa, pensamientos de dano, urgencia emocional)
  - "recuerdo" (memoria del pasado)
  - "meta" (planes, objetivos, compromisos)
  - "agradecimiento" (gratitud, cosas buenas)
  - "otro" (si no encaja en lo anterior)
- flags:
  - needsFollowup: true si este momento merece ser revisado en otra sesion aunque no sea una crisis.
  - possibleCrisis: true solo si hay senales claras de crisis emocional (desesperacion extrema, ideas de dano, riesgo).

IMPORTANT:
- Output ONLY a JSON object. No explanations, no extra text.
- Be conservative with "possibleCrisis": only true if the language clearly suggests danger or serious risk.`

// OpenAIConfig configures the OpenAI REST client.
type OpenAIConfig struct {
	APIKey          string
	BaseURL         string
	ChatModel       string
	TranscribeModel string
	Timeout         time.Duration
}

// OpenAIClient talks to the OpenAI REST API. One client serves both
// the Transcriber and SemanticAnalyzer interfaces so the serve
// command can wire either role independently.
type OpenAIClient struct {
	baseURL         string
	apiKey          string
	chatModel       string
	transcribeModel string
	timeout         time.Duration
	httpClient      *http.Client
}

var (
	_ Transcriber      = (*OpenAIClient)(nil)
	_ SemanticAnalyzer = (*OpenAIClient)(nil)
)

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	chatModel := strings.TrimSpace(cfg.ChatModel)
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	transcribeModel := strings.TrimSpace(cfg.TranscribeModel)
	if transcribeModel == "" {
		transcribeModel = DefaultTranscribeModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultOpenAITimeout
	}
	return &OpenAIClient{
		baseURL:         baseURL,
		apiKey:          strings.TrimSpace(cfg.APIKey),
		chatModel:       chatModel,
		transcribeModel: transcribeModel,
		timeout:         timeout,
		httpClient:      &http.Client{},
	}
}

// NewOpenAIClientWithHTTPClient is intended for tests; it avoids
// network access by using a custom RoundTripper.
func NewOpenAIClientWithHTTPClient(cfg OpenAIConfig, httpClient *http.Client) *OpenAIClient {
	c := NewOpenAIClient(cfg)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// HTTPError is a non-2xx response from the upstream API
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "upstream http error"
	}
	if e.Body == "" {
		return fmt.Sprintf("upstream http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("upstream http error: status=%d body=%s", e.StatusCode, e.Body)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature,omitempty"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content,omitempty"`
		} `json:"message,omitempty"`
	} `json:"choices"`
}

type semanticPayload struct {
	Transcript     string            `json:"transcript"`
	Language       string            `json:"language,omitempty"`
	SignalFeatures models.FeatureSet `json:"signalFeatures"`
}

type semanticCompletion struct {
	Summary    string   `json:"summary"`
	Topics     []string `json:"topics"`
	MomentType string   `json:"momentType"`
	Flags      *struct {
		NeedsFollowup  bool `json:"needsFollowup"`
		PossibleCrisis bool `json:"possibleCrisis"`
	} `json:"flags"`
}

// AnalyzeSemantic asks the chat model for the shard's semantic block.
// An empty transcript short-circuits to the neutral block without a
// network call.
func (c *OpenAIClient) AnalyzeSemantic(ctx context.Context, transcript, language string, features models.FeatureSet) (models.SemanticBlock, error) {
	if strings.TrimSpace(transcript) == "" {
		return NeutralSemantic(), nil
	}

	payload, err := json.Marshal(semanticPayload{
		Transcript:     transcript,
		Language:       language,
		SignalFeatures: features,
	})
	if err != nil {
		return NeutralSemantic(), err
	}

	reqBody := chatCompletionRequest{
		Model: c.chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: semanticSystemPrompt},
			{Role: "user", Content: string(payload)},
		},
		Temperature:    semanticTemperature,
		ResponseFormat: map[string]any{"type": "json_object"},
	}

	var resp chatCompletionResponse
	if err := c.doJSON(ctx, http.MethodPost, chatCompletionsPath, reqBody, &resp); err != nil {
		return NeutralSemantic(), err
	}

	var content string
	if len(resp.Choices) > 0 {
		content = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if content == "" {
		return NeutralSemantic(), errors.New("empty upstream completion")
	}

	var out semanticCompletion
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return NeutralSemantic(), fmt.Errorf("decode semantic completion: %w", err)
	}

	block := models.SemanticBlock{
		Summary:    out.Summary,
		Topics:     out.Topics,
		MomentType: out.MomentType,
		Flags:      &models.SemanticFlags{},
	}
	if block.Topics == nil {
		block.Topics = []string{}
	}
	if block.MomentType == "" {
		block.MomentType = models.MomentTypeOther
	}
	if out.Flags != nil {
		block.Flags.NeedsFollowup = out.Flags.NeedsFollowup
		block.Flags.PossibleCrisis = out.Flags.PossibleCrisis
	}
	return block, nil
}

type transcriptionResponse struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// Transcribe uploads the clip to the speech-to-text endpoint. The
// verbose response format carries the detected language alongside the
// text.
func (c *OpenAIClient) Transcribe(ctx context.Context, audioPath string) (Transcription, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return NeutralTranscription(), err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return NeutralTranscription(), err
	}
	if _, err := io.Copy(part, file); err != nil {
		return NeutralTranscription(), err
	}
	if err := writer.WriteField("model", c.transcribeModel); err != nil {
		return NeutralTranscription(), err
	}
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return NeutralTranscription(), err
	}
	if err := writer.Close(); err != nil {
		return NeutralTranscription(), err
	}

	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx2, http.MethodPost, c.baseURL+transcriptionsPath, &buf)
	if err != nil {
		return NeutralTranscription(), err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NeutralTranscription(), err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return NeutralTranscription(), &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return NeutralTranscription(), err
	}
	return Transcription{
		Text:     strings.TrimSpace(out.Text),
		Language: out.Language,
	}, nil
}

func (c *OpenAIClient) setAuth(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *OpenAIClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx2, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Constants for default configuration
const (
	DefaultOpenAIBaseURL   = "https://api.openai.com"
	DefaultChatModel       = "gpt-4.1-mini"
	DefaultTranscribeModel = "whisper-1"
	DefaultOpenAITimeout   = 20 * time.Second

	chatCompletionsPath = "/v1/chat/completions"
	transcriptionsPath  = "/v1/audio/transcriptions"
	semanticTemperature = 0.2
	maxErrorBodyBytes   = 1 << 20
)
