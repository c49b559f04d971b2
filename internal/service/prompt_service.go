package service

import (
	"context"
	"time"

	"socialrobot-be/internal/dto"
	"socialrobot-be/internal/entity"
	"socialrobot-be/internal/pkg/apperror"
	"socialrobot-be/internal/pkg/logger"
	"socialrobot-be/internal/pkg/serverutils"
	"socialrobot-be/internal/repository/contract"
	"socialrobot-be/pkg/events"
	"socialrobot-be/pkg/prompt"
)

const promptModule = "PROMPT"

type IPromptService interface {
	Generate(ctx context.Context, req *dto.GeneratePromptRequest) (*dto.GeneratePromptResponse, error)
	ListByCommunication(ctx context.Context, communicationId string) ([]*dto.PromptRecordResponse, error)
}

type promptService struct {
	communications contract.CommunicationRepository
	prompts        contract.PromptRepository
	events         *eventEmitter
	logger         logger.ILogger
	now            func() time.Time
}

func NewPromptService(
	communications contract.CommunicationRepository,
	prompts contract.PromptRepository,
	publisher events.Publisher,
	log logger.ILogger,
) IPromptService {
	return &promptService{
		communications: communications,
		prompts:        prompts,
		events:         newEventEmitter(publisher, log),
		logger:         log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Generate composes the prompt from the durable record only. The live
// cache is never consulted, so a restart with an empty registry still
// produces the configured prompt.
func (s *promptService) Generate(ctx context.Context, req *dto.GeneratePromptRequest) (*dto.GeneratePromptResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	record, err := s.communications.FindByPublicId(ctx, req.CommunicationId)
	if err != nil {
		s.logger.Error(promptModule, "Failed to load communication", map[string]interface{}{
			"communication_id": req.CommunicationId,
			"error":            err,
		})
		return nil, apperror.DurableStore("Failed to load communication", err)
	}
	if record == nil {
		return nil, apperror.NotFound("Communication not found")
	}

	model := record.Config.LlmModel
	if model == entity.LLMModelNotSet {
		return nil, apperror.Client("No LLM model configured for this communication")
	}
	if !model.IsValid() {
		return nil, invalidModelError(string(model))
	}

	suffix := record.Config.CustomPromptSuffix
	fullPrompt := prompt.Compose(req.Prompt, suffix)

	entry := &entity.Prompt{
		CommunicationId:     req.CommunicationId,
		UserInput:           req.Prompt,
		InitialPromptSuffix: suffix,
		GeneratedPrompt:     fullPrompt,
		LlmModel:            model,
		CreatedAt:           s.now(),
	}
	if err := s.prompts.Create(ctx, entry); err != nil {
		s.logger.Error(promptModule, "Failed to record generated prompt", map[string]interface{}{
			"communication_id": req.CommunicationId,
			"error":            err,
		})
		return nil, apperror.DurableStore("Prompt was composed but could not be recorded", err)
	}

	s.logger.Debug(promptModule, "Prompt generated", map[string]interface{}{
		"communication_id": req.CommunicationId,
		"model":            model,
	})
	s.events.emit(ctx, events.PromptGenerated, map[string]interface{}{
		"communicationId": req.CommunicationId,
		"promptId":        entry.Id,
		"model":           string(model),
	})

	return &dto.GeneratePromptResponse{
		FullPrompt: fullPrompt,
		Model:      string(model),
	}, nil
}

func (s *promptService) ListByCommunication(ctx context.Context, communicationId string) ([]*dto.PromptRecordResponse, error) {
	if communicationId == "" {
		return nil, apperror.Client("Missing communication_id")
	}

	prompts, err := s.prompts.FindByCommunicationId(ctx, communicationId)
	if err != nil {
		s.logger.Error(promptModule, "Failed to list prompts", map[string]interface{}{
			"communication_id": communicationId,
			"error":            err,
		})
		return nil, apperror.DurableStore("Failed to list prompts", err)
	}

	result := make([]*dto.PromptRecordResponse, 0, len(prompts))
	for _, p := range prompts {
		result = append(result, &dto.PromptRecordResponse{
			Id:                  p.Id,
			CommunicationId:     p.CommunicationId,
			UserInput:           p.UserInput,
			InitialPromptSuffix: p.InitialPromptSuffix,
			GeneratedPrompt:     p.GeneratedPrompt,
			LlmModel:            string(p.LlmModel),
			CreatedAt:           p.CreatedAt,
		})
	}
	return result, nil
}
