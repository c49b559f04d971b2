package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"socialrobot-be/internal/dto"
	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/live"
	"socialrobot-be/internal/pkg/apperror"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/pkg/serverutils"
	"socialrobot-be/internal/repository/contract"
	"socialrobot-be/pkg/events"
	"socialrobot-be/pkg/idgen"
)

const communicationModule = "COMMUNICATION"

type ICommunicationService interface {
	Create(ctx context.Context) (*dto.CreateCommunicationResponse, error)
	SetPromptSuffix(ctx context.Context, req *dto.SetPromptSuffixRequest) error
	SetSubtitlesEnabled(ctx context.Context, req *dto.SetSubtitlesEnabledRequest) error
	SetConfig(ctx context.Context, req *dto.SetCommunicationConfigRequest) error
	GetConfig(ctx context.Context, communicationId string) (*dto.CommunicationConfigResponse, error)
	ClearHistory(ctx context.Context, req *dto.ClearHistoryRequest) error
	ControlPanelOptions() *dto.ControlPanelConfigResponse
}

type CommunicationServiceOptions struct {
	IdMaxAttempts int
	IdGenerator   idgen.Generator
}

type communicationService struct {
	communications contract.CommunicationRepository
	registry       *live.Registry
	bridge         *live.Bridge
	events         *eventEmitter
	logger         logger.ILogger
	ids            idgen.Generator
	maxAttempts    int
}

func NewCommunicationService(
	communications contract.CommunicationRepository,
	registry *live.Registry,
	bridge *live.Bridge,
	publisher events.Publisher,
	log logger.ILogger,
	opts CommunicationServiceOptions,
) ICommunicationService {
	if opts.IdMaxAttempts <= 0 {
		opts.IdMaxAttempts = idgen.DefaultMaxAttempts
	}
	return &communicationService{
		communications: communications,
		registry:       registry,
		bridge:         bridge,
		events:         newEventEmitter(publisher, log),
		logger:         log,
		ids:            opts.IdGenerator,
		maxAttempts:    opts.IdMaxAttempts,
	}
}

func (s *communicationService) Create(ctx context.Context) (*dto.CreateCommunicationResponse, error) {
	id, err := s.ids.Allocate(ctx, s.communications.ExistsByPublicId, s.maxAttempts)
	if err != nil {
		if errors.Is(err, idgen.ErrExhausted) {
			s.logger.Error(communicationModule, "Communication id allocation exhausted", map[string]interface{}{
				"attempts": s.maxAttempts,
				"error":    err,
			})
			return nil, apperror.IdentifierExhausted("Failed to allocate a unique communication id", err)
		}
		s.logger.Error(communicationModule, "Communication id lookup failed", map[string]interface{}{
			"error": err,
		})
		return nil, apperror.DurableStore("Failed to create communication", err)
	}

	record := &entity.Communication{
		PublicId:  id,
		Config:    entity.DefaultCommunicationConfig(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.communications.Create(ctx, record); err != nil {
		s.logger.Error(communicationModule, "Failed to insert communication", map[string]interface{}{
			"communication_id": id,
			"error":            err,
		})
		return nil, apperror.DurableStore("Failed to create communication", err)
	}

	unlock := s.registry.Lock(id)
	_, err = s.registry.Register(id, record.Config)
	unlock()
	// A bot may have connected between the insert and here and registered
	// the session lazily. That session is equivalent.
	if err != nil && !errors.Is(err, live.ErrAlreadyRegistered) {
		return nil, apperror.Internal("Failed to register communication", err)
	}

	s.logger.Info(communicationModule, "Communication created", map[string]interface{}{
		"communication_id": id,
	})
	s.events.emit(ctx, events.CommunicationCreated, map[string]interface{}{
		"communicationId": id,
	})

	return &dto.CreateCommunicationResponse{CommunicationId: id}, nil
}

func (s *communicationService) SetPromptSuffix(ctx context.Context, req *dto.SetPromptSuffixRequest) error {
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return s.sync(ctx, req.CommunicationId, map[entity.CommunicationField]any{
		entity.FieldCustomPromptSuffix: *req.Suffix,
	}, nil)
}

func (s *communicationService) SetSubtitlesEnabled(ctx context.Context, req *dto.SetSubtitlesEnabledRequest) error {
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	enabled := *req.Enabled
	return s.sync(ctx, req.CommunicationId, map[entity.CommunicationField]any{
		entity.FieldSubtitlesEnabled: enabled,
	}, func(entity.CommunicationConfig) live.Event {
		return live.SubtitlesToggle{Enabled: enabled}
	})
}

func (s *communicationService) SetConfig(ctx context.Context, req *dto.SetCommunicationConfigRequest) error {
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	fields := map[entity.CommunicationField]any{}
	if req.LlmModel != nil {
		model := entity.LLMModel(*req.LlmModel)
		if !model.IsValid() {
			return invalidModelError(*req.LlmModel)
		}
		fields[entity.FieldLlmModel] = model
	}
	if req.VoiceLanguageCode != nil {
		voice := entity.VoiceLanguageCode(*req.VoiceLanguageCode)
		if !voice.IsValid() {
			return apperror.Client(fmt.Sprintf("Invalid voice language code '%s'. Valid codes: %s",
				*req.VoiceLanguageCode, strings.Join(entity.SupportedVoiceLanguages(), ", ")))
		}
		fields[entity.FieldVoiceLanguageCode] = voice
	}
	if req.VoiceGender != nil {
		gender := entity.VoiceGender(*req.VoiceGender)
		if !gender.IsValid() {
			return apperror.Client(fmt.Sprintf("Invalid voice gender '%s'. Valid genders: %s",
				*req.VoiceGender, strings.Join(entity.SupportedVoiceGenders(), ", ")))
		}
		fields[entity.FieldVoiceGender] = gender
	}

	return s.sync(ctx, req.CommunicationId, fields, func(cfg entity.CommunicationConfig) live.Event {
		return live.SystemConfig{Config: cfg}
	})
}

// sync writes fields durably, mirrors them into the live session and, when
// event is non-nil, pushes the result to the attached bot. All three steps
// run under the id's sequence lock. A failed durable write stops the
// sequence before the cache or the bot see anything.
func (s *communicationService) sync(
	ctx context.Context,
	publicId string,
	fields map[entity.CommunicationField]any,
	event func(entity.CommunicationConfig) live.Event,
) error {
	unlock := s.registry.Lock(publicId)
	defer unlock()

	matched, err := s.communications.UpdateFields(ctx, publicId, fields)
	if err != nil {
		s.logger.Error(communicationModule, "Failed to update communication", map[string]interface{}{
			"communication_id": publicId,
			"fields":           fieldNames(fields),
			"error":            err,
		})
		return apperror.DurableStore("Failed to update communication", err)
	}
	if !matched {
		return apperror.NotFound("Communication ID not found")
	}

	if session, ok := s.registry.Get(publicId); ok {
		var setErr error
		session.UpdateConfig(func(cfg *entity.CommunicationConfig) {
			setErr = cfg.SetAll(fields)
		})
		if setErr != nil {
			return apperror.Internal("Failed to update live session", setErr)
		}
		if event != nil {
			s.bridge.Push(publicId, event(session.Config()))
		}
	}

	s.events.emit(ctx, events.CommunicationConfigUpdated, map[string]interface{}{
		"communicationId": publicId,
		"fields":          fieldNames(fields),
	})
	return nil
}

func (s *communicationService) GetConfig(ctx context.Context, communicationId string) (*dto.CommunicationConfigResponse, error) {
	if communicationId == "" {
		return nil, apperror.Client("Missing communication_id")
	}

	record, err := s.communications.FindByPublicId(ctx, communicationId)
	if err != nil {
		s.logger.Error(communicationModule, "Failed to load communication", map[string]interface{}{
			"communication_id": communicationId,
			"error":            err,
		})
		return nil, apperror.DurableStore("Failed to load communication", err)
	}
	if record == nil {
		return nil, apperror.NotFound("Communication not found")
	}

	return &dto.CommunicationConfigResponse{
		SubtitlesEnabled:   record.Config.SubtitlesEnabled,
		CustomPromptSuffix: record.Config.CustomPromptSuffix,
		LlmModel:           string(record.Config.LlmModel),
		VoiceLanguageCode:  string(record.Config.VoiceLanguageCode),
		VoiceGender:        string(record.Config.VoiceGender),
	}, nil
}

// ClearHistory empties the live chat history. Archived turns are kept.
func (s *communicationService) ClearHistory(ctx context.Context, req *dto.ClearHistoryRequest) error {
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if session, ok := s.registry.Get(req.CommunicationId); ok {
		session.ClearHistory()
	}
	return nil
}

func (s *communicationService) ControlPanelOptions() *dto.ControlPanelConfigResponse {
	return &dto.ControlPanelConfigResponse{
		Models:  entity.SupportedLLMModels(),
		Voices:  entity.SupportedVoiceLanguages(),
		Genders: entity.SupportedVoiceGenders(),
	}
}

func invalidModelError(model string) error {
	return apperror.Client(fmt.Sprintf("Invalid model '%s'. Valid models: %s",
		model, strings.Join(entity.SupportedLLMModels(), ", ")))
}

func fieldNames(fields map[entity.CommunicationField]any) []string {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
