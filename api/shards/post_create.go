package shards

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/services/enrichment"
	shardsService "github.com/vocalog/diary-api/internal/services/shards"
	"github.com/vocalog/diary-api/pkg/wav"
)

// Content types accepted for uploads. Browsers are inconsistent about
// wav MIME naming, so the whole family is allowed; the header check on
// the actual bytes is the real gate.
var acceptedAudioTypes = map[string]bool{
	"audio/wav":                true,
	"audio/x-wav":              true,
	"audio/wave":               true,
	"application/octet-stream": true,
	"": true,
}

// PostCreate accepts a recorded clip and creates its shard
// @Summary Upload a shard
// @Description Accepts a WAV recording for an episode, computes its acoustic features synchronously and schedules background transcription and analysis.
// @Tags shards
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Episode ID"
// @Param file formData file true "WAV audio clip"
// @Param start_time formData number false "Clip start, seconds from episode start"
// @Param end_time formData number false "Clip end, seconds from episode start; defaults to start + duration"
// @Success 201 {object} models.Shard "Created shard"
// @Failure 400 {object} types.ErrorResponse "Bad audio type, malformed WAV or invalid parameters"
// @Failure 404 {object} types.ErrorResponse "Episode not found"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/episodes/{id}/shards [post]
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ShardService == nil {
			types.SendInternalError(c, "Shard service not configured")
			return
		}

		episodeID := c.Param("id")

		startTime, ok := parseFormFloat(c, "start_time", 0)
		if !ok {
			return
		}
		endTime, ok := parseFormFloat(c, "end_time", 0)
		if !ok {
			return
		}
		if startTime < 0 {
			types.SendBadRequest(c, "invalid_parameters", "start_time must not be negative")
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			types.SendBadRequest(c, "invalid_parameters", "file field is required")
			return
		}
		contentType := strings.ToLower(strings.TrimSpace(fileHeader.Header.Get("Content-Type")))
		if !acceptedAudioTypes[contentType] {
			types.SendBadRequest(c, "invalid_audio_type", fmt.Sprintf("unsupported content type %q", contentType))
			return
		}

		// Check the episode before any disk work
		exists, err := deps.ShardService.EpisodeExists(c.Request.Context(), episodeID)
		if err != nil {
			log.Printf("[ERROR] Failed to check episode %s: %v", episodeID, err)
			types.SendInternalError(c, "Failed to check episode")
			return
		}
		if !exists {
			types.SendError(c, http.StatusNotFound, "episode_not_found", "Episode not found")
			return
		}

		// Stage the upload in the work dir first; it only moves into
		// the audio dir once it passed validation and measurement. A
		// crash in between leaves a stray work file for the cleanup
		// sweeper, never a half-written clip next to real audio.
		tempPath, err := stageUpload(c, fileHeader, deps.WorkDir)
		if err != nil {
			log.Printf("[ERROR] Failed to stage upload: %v", err)
			types.SendInternalError(c, "Failed to store audio")
			return
		}
		defer os.Remove(tempPath)

		features, err := wav.AnalyzeFile(tempPath)
		if err != nil {
			if isWavError(err) {
				types.SendBadRequest(c, "invalid_wav", err.Error())
			} else {
				log.Printf("[ERROR] Failed to analyze upload: %v", err)
				types.SendInternalError(c, "Failed to analyze audio")
			}
			return
		}

		shardID := uuid.New().String()
		audioPath := filepath.Join(deps.AudioDir, episodeID, shardID+".wav")
		if err := moveIntoPlace(tempPath, audioPath); err != nil {
			log.Printf("[ERROR] Failed to place audio file: %v", err)
			types.SendInternalError(c, "Failed to store audio")
			return
		}

		shard, err := deps.ShardService.CreateShard(c.Request.Context(), shardsService.CreateShardParams{
			ShardID:   shardID,
			EpisodeID: episodeID,
			StartTime: startTime,
			EndTime:   endTime,
			Source:    "mic",
			AudioPath: audioPath,
			Features:  shardsService.FeatureSetFromAudio(features),
		})
		if err != nil {
			os.Remove(audioPath)
			if shardsService.IsNotFound(err) {
				types.SendError(c, http.StatusNotFound, "episode_not_found", "Episode not found")
			} else {
				log.Printf("[ERROR] Failed to create shard: %v", err)
				types.SendInternalError(c, "Failed to create shard")
			}
			return
		}

		// Fire-and-forget: the response never waits on enrichment, and
		// a full queue only costs this shard its analysis pass.
		if deps.Dispatcher != nil {
			deps.Dispatcher.Dispatch(enrichment.Task{ShardID: shard.ID, AudioPath: audioPath})
		}

		c.JSON(http.StatusCreated, shard)
	}
}

// parseFormFloat reads an optional float form field, answering the
// request itself when the value does not parse
func parseFormFloat(c *gin.Context, field string, fallback float64) (float64, bool) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		types.SendBadRequest(c, "invalid_parameters", fmt.Sprintf("%s must be a number", field))
		return 0, false
	}
	return value, true
}

// stageUpload writes the multipart file to a temp file in the work dir
func stageUpload(c *gin.Context, fileHeader *multipart.FileHeader, workDir string) (string, error) {
	if workDir == "" {
		workDir = os.TempDir()
	}
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", fmt.Errorf("creating work dir: %w", err)
	}

	tempPath := filepath.Join(workDir, "upload-"+uuid.New().String()+".wav")
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	return tempPath, nil
}

// moveIntoPlace moves the validated clip to its final path, falling
// back to copy semantics when rename crosses filesystems
func moveIntoPlace(tempPath, audioPath string) error {
	if err := os.MkdirAll(filepath.Dir(audioPath), 0755); err != nil {
		return fmt.Errorf("creating audio dir: %w", err)
	}
	if err := os.Rename(tempPath, audioPath); err == nil {
		return nil
	}
	data, err := os.ReadFile(tempPath)
	if err != nil {
		return fmt.Errorf("reading staged upload: %w", err)
	}
	if err := os.WriteFile(audioPath, data, 0644); err != nil {
		return fmt.Errorf("writing audio file: %w", err)
	}
	return nil
}

func isWavError(err error) bool {
	return errors.Is(err, wav.ErrInvalidHeader) ||
		errors.Is(err, wav.ErrTruncatedFile) ||
		errors.Is(err, wav.ErrUnsupportedFormat) ||
		errors.Is(err, wav.ErrNoAudioData)
}
