package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glamai/server/internal/gemini"
	"github.com/glamai/server/internal/logger"
	"github.com/glamai/server/internal/usage"
)

const defaultMaxUploadBytes = 5 * 1024 * 1024

// Pipeline runs transformation requests end to end: validate, optionally
// enhance, generate, parse, and commit the attempt to the usage record. One
// run per owner at a time; concurrent submissions are rejected with ErrBusy
// rather than queued.
type Pipeline struct {
	invoker        Invoker
	store          usage.Store
	maxUploadBytes int64

	mu       sync.Mutex
	inflight map[string]struct{}
}

type Config struct {
	MaxUploadBytes int64
}

func NewPipeline(invoker Invoker, store usage.Store, config Config) *Pipeline {
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = defaultMaxUploadBytes
	}

	return &Pipeline{
		invoker:        invoker,
		store:          store,
		maxUploadBytes: config.MaxUploadBytes,
		inflight:       make(map[string]struct{}),
	}
}

// runs a full hairstyle transformation for the owner. Only outcomes where the
// provider accepted the request and replied consume a daily attempt; rejected
// input and failed attempts leave the usage record untouched.
func (p *Pipeline) Transform(ctx context.Context, ownerID string, req TransformRequest) (*Outcome, error) {
	if err := p.acquire(ownerID); err != nil {
		return nil, err
	}
	defer p.release(ownerID)

	if outcome := p.validateImage(req.Image, req.MIMEType); outcome != nil {
		return outcome, nil
	}

	if strings.TrimSpace(req.Style) == "" {
		return &Outcome{
			Status: StatusPermanentError,
			Detail: "a hairstyle must be selected",
		}, nil
	}

	image, mimeType := req.Image, req.MIMEType

	if req.Enhance {
		image, mimeType = p.enhance(ctx, ownerID, image, mimeType)
	}

	instruction := buildTransformInstruction(req.Style, req.Color, audienceOrDefault(req.Audience))

	outcome := p.generate(ctx, instruction, image, mimeType)

	if outcome.Status == StatusSuccess || outcome.Status == StatusNoUsableOutput {
		p.commit(ctx, ownerID)
	}

	return outcome, nil
}

// re-colors an already generated look. Recoloring refines an existing result,
// so it bypasses the usage governor entirely and never consumes an attempt.
func (p *Pipeline) Recolor(ctx context.Context, ownerID string, req RecolorRequest) (*Outcome, error) {
	if err := p.acquire(ownerID); err != nil {
		return nil, err
	}
	defer p.release(ownerID)

	if outcome := p.validateImage(req.Image, req.MIMEType); outcome != nil {
		return outcome, nil
	}

	return p.generate(ctx, buildRecolorInstruction(req.Color), req.Image, req.MIMEType), nil
}

// runs the technical photo optimization as a standalone operation. Does not
// consume an attempt.
func (p *Pipeline) Enhance(ctx context.Context, ownerID string, image []byte, mimeType string) (*Outcome, error) {
	if err := p.acquire(ownerID); err != nil {
		return nil, err
	}
	defer p.release(ownerID)

	if outcome := p.validateImage(image, mimeType); outcome != nil {
		return outcome, nil
	}

	return p.generate(ctx, enhanceInstruction, image, mimeType), nil
}

// rejects input before anything touches the network; nil means valid
func (p *Pipeline) validateImage(image []byte, mimeType string) *Outcome {
	if len(image) == 0 {
		return &Outcome{
			Status: StatusPermanentError,
			Detail: "no image was provided",
		}
	}

	if !strings.HasPrefix(mimeType, "image/") {
		return &Outcome{
			Status: StatusPermanentError,
			Detail: fmt.Sprintf("unsupported media type %q, expected an image", mimeType),
		}
	}

	if int64(len(image)) > p.maxUploadBytes {
		return &Outcome{
			Status: StatusPermanentError,
			Detail: fmt.Sprintf("image exceeds the %dMB upload limit", p.maxUploadBytes/(1024*1024)),
		}
	}

	return nil
}

// pre-pass that normalizes photo quality; any failure falls back to the
// original image without surfacing an error
func (p *Pipeline) enhance(ctx context.Context, ownerID string, image []byte, mimeType string) ([]byte, string) {
	resp, err := p.invoker.GenerateImage(ctx, enhanceInstruction, image, mimeType)
	if err != nil {
		logger.Debug("photo enhancement failed, continuing with original", "owner_id", ownerID, "error", err)
		return image, mimeType
	}

	enhanced, err := gemini.FirstImage(resp)
	if err != nil || enhanced == nil {
		logger.Debug("photo enhancement produced no image, continuing with original", "owner_id", ownerID)
		return image, mimeType
	}

	return enhanced.Data, enhanced.MIMEType
}

// one provider round trip plus result parsing, classified into an outcome
func (p *Pipeline) generate(ctx context.Context, instruction string, image []byte, mimeType string) *Outcome {
	resp, err := p.invoker.GenerateImage(ctx, instruction, image, mimeType)
	if err != nil {
		if gemini.IsTransient(err) {
			return &Outcome{
				Status: StatusTransientError,
				Detail: "An error occurred while creating your transformation. Please check your connection and try again.",
			}
		}

		return &Outcome{
			Status: StatusPermanentError,
			Detail: "The image could not be processed. Please try a different photo.",
		}
	}

	result, err := gemini.FirstImage(resp)
	if err != nil || result == nil {
		return &Outcome{
			Status: StatusNoUsableOutput,
			Detail: "We couldn't create this transformation. This might be due to image quality or style complexity. Please try a different photo or style.",
		}
	}

	return &Outcome{Status: StatusSuccess, Image: result}
}

// records the consumed attempt; a storage failure here must not retract a
// result already produced, so it is logged and swallowed
func (p *Pipeline) commit(ctx context.Context, ownerID string) {
	if err := p.store.RecordSuccess(ctx, ownerID, time.Now()); err != nil {
		logger.ErrorErr(err, "failed to record transformation attempt", "owner_id", ownerID)
	}
}

func (p *Pipeline) acquire(ownerID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, busy := p.inflight[ownerID]; busy {
		return ErrBusy
	}

	p.inflight[ownerID] = struct{}{}

	return nil
}

func (p *Pipeline) release(ownerID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.inflight, ownerID)
}

func audienceOrDefault(audience string) string {
	switch audience {
	case "woman", "man":
		return audience
	default:
		return "person"
	}
}
