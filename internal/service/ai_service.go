package service

import (
	"context"
	"errors"
	"fmt"
	"speech_coach_backend/internal/config"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("AI returned no choices")

// AnalysisClient 向外部语言模型发送一条指令，返回原始文本
type AnalysisClient interface {
	Complete(ctx context.Context, instruction string) (string, error)
}

type OpenAIAnalysisClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewAnalysisClient 根据配置创建客户端；未配置 API Key 时返回 nil，调用方走本地评分
func NewAnalysisClient(cfg config.AIConfig) AnalysisClient {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &OpenAIAnalysisClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (c *OpenAIAnalysisClient) Complete(ctx context.Context, instruction string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a language learning assistant. You reply with a single JSON object and nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: instruction,
			},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
