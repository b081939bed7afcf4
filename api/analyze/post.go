package analyze

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/internal/services/inference"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
	"github.com/vocalog/diary-api/pkg/wav"
)

// Content types accepted for the analysis upload. Blank is allowed
// because recorders that stream straight from a buffer often omit it.
var acceptedAudioTypes = map[string]bool{
	"audio/wav":      true,
	"audio/x-wav":    true,
	"audio/wave":     true,
	"audio/vnd.wave": true,
	"":               true,
}

// clipContext is the caller-supplied meta form field. Only the shard
// reference matters server-side; it routes the result into the
// merge-on-write persistence path.
type clipContext struct {
	ShardID string `json:"shardId"`
}

// PostAnalyze runs a full analysis pass inline and returns the document
// @Summary Analyze a clip synchronously
// @Description Transcribes and classifies an uploaded WAV clip in the request, returning the composed analysis document. When the meta field names a shardId the document is also persisted to that shard. Adapter failures degrade to neutral results instead of failing the request.
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "WAV audio clip"
// @Param sampleRate formData number true "Clip sample rate in Hz"
// @Param durationSeconds formData number true "Clip duration in seconds"
// @Param features formData string false "Signal features as a JSON object"
// @Param meta formData string false "Clip context as a JSON object; shardId routes persistence"
// @Success 200 {object} models.AnalysisDocument "Composed analysis document"
// @Failure 400 {object} types.ErrorResponse "Bad audio type, malformed WAV or invalid parameters"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/analyze-shard [post]
func PostAnalyze(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("audio")
		if err != nil {
			types.SendBadRequest(c, "invalid_parameters", "audio field is required")
			return
		}
		contentType := strings.ToLower(strings.TrimSpace(fileHeader.Header.Get("Content-Type")))
		if !acceptedAudioTypes[contentType] {
			types.SendBadRequest(c, "invalid_audio_type", fmt.Sprintf("unsupported content type %q", contentType))
			return
		}

		sampleRate, durationSeconds, ok := parseClipParameters(c)
		if !ok {
			return
		}

		tempPath, err := stageClip(c, fileHeader, deps.WorkDir)
		if err != nil {
			log.Printf("[ERROR] Failed to stage clip: %v", err)
			types.SendInternalError(c, "Failed to store audio")
			return
		}
		defer os.Remove(tempPath)

		if err := wav.ValidateFile(tempPath); err != nil {
			types.SendBadRequest(c, "invalid_wav", "Uploaded file is not a valid WAV")
			return
		}

		// Malformed optional JSON falls back to the zero value; the
		// clip itself is still worth analyzing.
		var features models.FeatureSet
		if raw := strings.TrimSpace(c.PostForm("features")); raw != "" {
			if err := json.Unmarshal([]byte(raw), &features); err != nil {
				log.Printf("[WARN] Ignoring malformed features JSON: %v", err)
				features = models.FeatureSet{}
			}
		}
		var clip clipContext
		if raw := strings.TrimSpace(c.PostForm("meta")); raw != "" {
			if err := json.Unmarshal([]byte(raw), &clip); err != nil {
				log.Printf("[WARN] Ignoring malformed meta JSON: %v", err)
				clip = clipContext{}
			}
		}

		ctx := c.Request.Context()

		transcription := inference.NeutralTranscription()
		if deps.Transcriber != nil {
			if result, err := deps.Transcriber.Transcribe(ctx, tempPath); err != nil {
				log.Printf("[WARN] Transcription failed: %v", err)
			} else {
				transcription = result
			}
		}

		emotion := inference.NeutralEmotion()
		if deps.EmotionAnalyzer != nil {
			duration := durationSeconds
			if result, err := deps.EmotionAnalyzer.AnalyzeEmotion(ctx, tempPath, transcription.Text, features.Intensity, &duration); err != nil {
				log.Printf("[WARN] Emotion analysis failed: %v", err)
			} else {
				emotion = result
			}
		}

		semantic := inference.NeutralSemantic()
		if deps.SemanticAnalyzer != nil {
			if result, err := deps.SemanticAnalyzer.AnalyzeSemantic(ctx, transcription.Text, transcription.Language, features); err != nil {
				log.Printf("[WARN] Semantic analysis failed: %v", err)
			} else {
				semantic = result
			}
		}

		doc := inference.ComposeAnalysis(inference.ComposeParams{
			Transcription: transcription,
			Emotion:       emotion,
			Semantic:      semantic,
			Features:      features,
			Source:        deps.AnalysisSource,
			Version:       analysisVersion(deps),
			At:            time.Now().UTC(),
		})

		// Best effort: the caller gets the document either way
		if clip.ShardID != "" && deps.ShardService != nil {
			if _, err := deps.ShardService.ApplyAnalysis(ctx, clip.ShardID, shardsService.AnalysisUpdate{Analysis: doc}); err != nil {
				log.Printf("[WARN] Failed to persist analysis for shard %s: %v", clip.ShardID, err)
			}
		}

		log.Printf("[INFO] Analyzed clip (%d Hz, %.1fs, primary=%s)", sampleRate, durationSeconds, emotion.Primary)
		c.JSON(http.StatusOK, doc)
	}
}

// parseClipParameters validates the required numeric form fields
func parseClipParameters(c *gin.Context) (int, float64, bool) {
	rate, errRate := strconv.ParseFloat(strings.TrimSpace(c.PostForm("sampleRate")), 64)
	duration, errDuration := strconv.ParseFloat(strings.TrimSpace(c.PostForm("durationSeconds")), 64)
	if errRate != nil || errDuration != nil {
		types.SendBadRequest(c, "invalid_parameters", "sampleRate and durationSeconds must be numeric")
		return 0, 0, false
	}
	sampleRate := int(rate)
	if sampleRate <= 0 || duration <= 0 {
		types.SendBadRequest(c, "invalid_parameters", "sampleRate and durationSeconds must be > 0")
		return 0, 0, false
	}
	return sampleRate, duration, true
}

// stageClip writes the multipart file to a temp file in the work dir
func stageClip(c *gin.Context, fileHeader *multipart.FileHeader, workDir string) (string, error) {
	if workDir == "" {
		workDir = os.TempDir()
	}
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", fmt.Errorf("creating work dir: %w", err)
	}

	tempPath := filepath.Join(workDir, "shard-"+uuid.New().String()+".wav")
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	return tempPath, nil
}

func analysisVersion(deps *types.Dependencies) string {
	if deps.AnalysisVersion != "" {
		return deps.AnalysisVersion
	}
	return shardsService.DefaultAnalysisVersion
}
