package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"github.com/sawtify/api/internal/model"
	"github.com/sawtify/api/internal/service"
	"github.com/sawtify/api/internal/websocket"
)

// SongWorker processes async song generation jobs
type SongWorker struct {
	jobService  *service.SongJobService
	songService *service.SongService
	hub         *websocket.Hub
}

// NewSongWorker creates a new song worker
func NewSongWorker(jobService *service.SongJobService, songService *service.SongService, hub *websocket.Hub) *SongWorker {
	return &SongWorker{
		jobService:  jobService,
		songService: songService,
		hub:         hub,
	}
}

// ProcessTask handles song task processing
func (w *SongWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var taskPayload struct {
		JobID   string          `json:"jobId"`
		Payload json.RawMessage `json:"payload"`
	}

	if err := json.Unmarshal(t.Payload(), &taskPayload); err != nil {
		return fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	jobID := taskPayload.JobID
	log.Printf("Starting song job: %s", jobID)

	var payload model.SongJobPayload
	if err := json.Unmarshal(taskPayload.Payload, &payload); err != nil {
		w.failJob(ctx, jobID, "Invalid payload")
		return fmt.Errorf("failed to unmarshal song payload: %w", err)
	}

	// Skip jobs that were canceled while queued
	if status, err := w.jobService.GetStatus(ctx, jobID); err == nil && status.Status == model.JobStatusCanceled {
		log.Printf("Song job %s was canceled, skipping", jobID)
		return nil
	}

	w.updateProgress(ctx, jobID, 10, "Generating song and cover...")

	// The song path never fails: failed branches come back as placeholders.
	result := w.songService.Generate(ctx, &payload.Request)

	w.updateProgress(ctx, jobID, 95, "Finalizing...")

	if err := w.jobService.CompleteJob(ctx, jobID, result); err != nil {
		w.failJob(ctx, jobID, "Failed to save result")
		return fmt.Errorf("failed to complete job: %w", err)
	}

	if w.hub != nil {
		w.hub.BroadcastComplete(jobID, result)
	}

	log.Printf("Song job completed: %s", jobID)
	return nil
}

func (w *SongWorker) updateProgress(ctx context.Context, jobID string, progress int, step string) {
	if err := w.jobService.UpdateJobProgress(ctx, jobID, progress, step); err != nil {
		log.Printf("Failed to update progress for job %s: %v", jobID, err)
	}
	if w.hub != nil {
		w.hub.BroadcastProgress(jobID, progress, model.JobStatusRunning, step)
	}
}

func (w *SongWorker) failJob(ctx context.Context, jobID, message string) {
	if err := w.jobService.FailJob(ctx, jobID, message); err != nil {
		log.Printf("Failed to mark job %s as failed: %v", jobID, err)
	}
	if w.hub != nil {
		w.hub.BroadcastError(jobID, "JOB_FAILED", message)
	}
}
