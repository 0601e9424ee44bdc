package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/sawtify/api/internal/client"
	"github.com/sawtify/api/internal/config"
	"github.com/sawtify/api/internal/model"
	"github.com/sawtify/api/internal/wav"
)

// SongGenerator defines the interface for song generation
type SongGenerator interface {
	Generate(ctx context.Context, req *model.SongGenerateRequest) *model.SongGenerateResponse
}

// SongService produces a song clip plus a matching cover image. The two
// sub-generations run concurrently and a failed branch is replaced by a
// fixed placeholder reference, so a validated request never fails outright.
type SongService struct {
	gemini           client.MediaGenerator
	placeholderSong  string
	placeholderCover string
}

// NewSongService creates a new song service with a Gemini client
func NewSongService(gemini client.MediaGenerator, media *config.MediaConfig) *SongService {
	return &SongService{
		gemini:           gemini,
		placeholderSong:  media.PlaceholderSongURL,
		placeholderCover: media.PlaceholderCoverURL,
	}
}

// Generate fans out the vocal and cover generations, waits for both to
// settle and merges the results. Neither branch cancels the other; a
// branch that fails or returns a malformed reference is substituted by
// the configured placeholder.
func (s *SongService) Generate(ctx context.Context, req *model.SongGenerateRequest) *model.SongGenerateResponse {
	var (
		songURL, coverURL string
		songErr, coverErr error
	)

	if s.gemini != nil && s.gemini.IsConfigured() {
		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			audio, err := s.gemini.GenerateAudio(ctx, buildSongVocalPrompt(req), req.VoiceType.PrebuiltVoice())
			if err != nil {
				songErr = err
				return
			}
			songURL = wav.DataURI(wav.EncodeDefault(audio.PCM))
		}()

		go func() {
			defer wg.Done()
			coverURL, coverErr = s.gemini.GenerateImage(ctx, buildSongCoverPrompt(req.SongType, req.MusicStyle, req.Lyrics))
		}()

		wg.Wait()
	} else {
		log.Println("Info: Gemini not configured, using placeholder media")
	}

	if songErr != nil {
		log.Printf("Song audio generation failed (%s), using placeholder: %v", client.Classify(songErr), songErr)
	}
	if coverErr != nil {
		log.Printf("Cover image generation failed (%s), using placeholder: %v", client.Classify(coverErr), coverErr)
	}

	if !isWellFormedRef(songURL) {
		songURL = s.placeholderSong
	}
	if !isWellFormedRef(coverURL) {
		coverURL = s.placeholderCover
	}

	return &model.SongGenerateResponse{
		SongURL:       songURL,
		CoverImageURL: coverURL,
	}
}

// buildSongVocalPrompt renders the instruction sent to the audio model
func buildSongVocalPrompt(req *model.SongGenerateRequest) string {
	return fmt.Sprintf(`You are an AI music generator. Generate a song based on the following input:

Lyrics: %s
Voice Type: %s
Language: %s
Song Type: %s
Music Style: %s`,
		req.Lyrics, req.VoiceType, req.Language, req.SongType, req.MusicStyle)
}

// buildSongCoverPrompt renders the instruction sent to the image model
func buildSongCoverPrompt(songType model.SongType, musicStyle model.MusicStyle, lyrics string) string {
	return fmt.Sprintf(`An album cover for a %s song in the %s music style. The song lyrics are:

%s`, songType, musicStyle, lyrics)
}

// isWellFormedRef reports whether ref is a usable artifact reference:
// a data URI or a remote URL.
func isWellFormedRef(ref string) bool {
	return strings.HasPrefix(ref, "data:") ||
		strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://")
}
