// Package ai wraps the Gemini API behind a rate limiter and circuit
// breaker for the citizen-facing scheme assistant.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	genai "github.com/google/generative-ai-go/genai"

	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
	"github.com/Prajwalng2/Major-Project-temp/models"
)

const assistantModel = "gemini-2.0-flash"

// fallbackAnswer is returned when the breaker is open so citizens get a
// polite message instead of an upstream error.
const fallbackAnswer = "The assistant is experiencing high demand right now. Please try again in a moment, or browse the scheme directory directly."

type Assistant struct {
	client      *genai.Client
	breaker     *gobreaker.CircuitBreaker
	rateLimiter *rate.Limiter
}

func NewAssistant(apiKey string) (*Assistant, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "GeminiAPI",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	// Free-tier RPM with some buffer
	rateLimiter := rate.NewLimiter(rate.Limit(10*0.9/60.0), 2)

	return &Assistant{
		client:      client,
		breaker:     breaker,
		rateLimiter: rateLimiter,
	}, nil
}

// Ask answers a citizen's question about government schemes, grounding the
// model on the supplied catalog excerpt.
func (a *Assistant) Ask(ctx context.Context, question string, contextSchemes []models.Scheme) (string, error) {
	tracer := otel.Tracer("assistant")
	ctx, span := tracer.Start(ctx, "assistant.ask")
	defer span.End()

	span.SetAttributes(
		attribute.Int("assistant.context_schemes", len(contextSchemes)),
		attribute.String("assistant.model", assistantModel),
	)

	if err := a.rateLimiter.Wait(ctx); err != nil {
		span.SetAttributes(attribute.Bool("assistant.rate_limited", true))
		return "", err
	}

	result, err := a.breaker.Execute(func() (interface{}, error) {
		model := a.client.GenerativeModel(assistantModel)
		model.SetTemperature(0.4)
		model.SetMaxOutputTokens(1024)

		resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(question, contextSchemes)))
		if err != nil {
			span.SetAttributes(attribute.Bool("assistant.error", true))
			return nil, err
		}
		return extractText(resp), nil
	})

	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			span.SetAttributes(attribute.Bool("assistant.circuit_breaker_open", true))
			return fallbackAnswer, nil
		}
		return "", err
	}

	span.SetAttributes(attribute.Bool("assistant.success", true))
	return result.(string), nil
}

func buildPrompt(question string, contextSchemes []models.Scheme) string {
	var b strings.Builder
	b.WriteString("You are an assistant for an Indian government welfare scheme directory. ")
	b.WriteString("Answer the citizen's question using only the schemes listed below. ")
	b.WriteString("If none of them apply, say so and suggest browsing the directory.\n\n")

	for i, s := range contextSchemes {
		fmt.Fprintf(&b, "Scheme %d: %s\nCategory: %s\nMinistry: %s\nBenefit: %s\nEligibility: %s\n\n",
			i+1, s.Title, s.Category, s.Ministry, s.BenefitAmount, s.EligibilityText)
	}

	fmt.Fprintf(&b, "Question: %s", question)
	return b.String()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String()
}

// Close the client
func (a *Assistant) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}
